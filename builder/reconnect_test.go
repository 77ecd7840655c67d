package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgen/builder"
	"github.com/katalvlaran/netgen/random"
)

func TestReconnect_Scripted(t *testing.T) {
	net, err := builder.BuildNetwork(6, builder.Lattice1D())
	require.NoError(t, err)

	// Draws: ⌊6·0⌋=0 is self, ⌊6·0.9⌋=5 is a neighbor, ⌊6·0.5⌋=3 is accepted.
	src := random.NewReplay(0, 0.9, 0.5)
	require.NoError(t, builder.Reconnect(net, src, 0, 1))

	require.Equal(t, 3, src.Calls())
	require.Equal(t, []int{3, 5}, net.Neighbors(0))
	require.Equal(t, 2, net.Degree(0))
	require.Equal(t, 1, net.Degree(1))
	require.Equal(t, 3, net.Degree(3))
	require.NoError(t, net.Validate())
}

func TestReconnect_MayReturnToOldTarget(t *testing.T) {
	net, err := builder.BuildNetwork(6, builder.Lattice1D())
	require.NoError(t, err)
	// ⌊6·0.2⌋ = 1: the deleted neighbor is admissible again.
	require.NoError(t, builder.Reconnect(net, random.NewReplay(0.2), 0, 1))
	require.True(t, net.HasLink(0, 1))
	require.Equal(t, 6, net.EdgeCount())
}

func TestReconnect_PreservesSourceDegree(t *testing.T) {
	net, err := builder.BuildNetwork(60, builder.ErdosRenyi(0.2), builder.WithSeed(8))
	require.NoError(t, err)
	src := random.NewMT19937(9)
	edges := net.EdgeCount()

	for i := 0; i < net.Order(); i++ {
		nbrs := net.Neighbors(i)
		if len(nbrs) == 0 {
			continue
		}
		before := net.Degree(i)
		require.NoError(t, builder.Reconnect(net, src, i, nbrs[0]))
		require.Equal(t, before, net.Degree(i), "node %d", i)
		require.Equal(t, edges, net.EdgeCount())
	}
	require.NoError(t, net.Validate())
}

func TestReconnect_Errors(t *testing.T) {
	net, err := builder.BuildNetwork(4, builder.Lattice1D())
	require.NoError(t, err)
	src := random.NewReplay(0.5)

	require.ErrorIs(t, builder.Reconnect(net, src, 1, 1), builder.ErrInvalidArgument)
	require.ErrorIs(t, builder.Reconnect(net, src, 0, 4), builder.ErrInvalidArgument)
	require.ErrorIs(t, builder.Reconnect(net, src, -1, 0), builder.ErrInvalidArgument)
	require.ErrorIs(t, builder.Reconnect(net, nil, 0, 1), builder.ErrNeedRandSource)
	require.ErrorIs(t, builder.Reconnect(nil, src, 0, 1), builder.ErrConstructFailed)
	require.Zero(t, src.Calls())
	require.Equal(t, 4, net.EdgeCount())
}
