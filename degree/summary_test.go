package degree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgen/builder"
	"github.com/katalvlaran/netgen/core"
	"github.com/katalvlaran/netgen/degree"
)

func TestSummarize_Regular(t *testing.T) {
	net, err := builder.BuildNetwork(16, builder.Lattice2D())
	require.NoError(t, err)

	s := degree.Summarize(net)
	assert.Equal(t, 16, s.Nodes)
	assert.Equal(t, 32, s.Edges)
	assert.Equal(t, 4.0, s.AverageDegree)
	assert.Equal(t, 4, s.Min)
	assert.Equal(t, 4, s.Max)
	assert.Zero(t, s.Variance)
	assert.Zero(t, s.Isolated)
	assert.Equal(t, 1, s.Components)
	assert.Equal(t, []int{0, 0, 0, 0, 16}, degree.Histogram(net))
}

func TestSummarize_Star(t *testing.T) {
	net, err := core.NewNetwork(5)
	require.NoError(t, err)
	for i := 1; i < 4; i++ {
		require.NoError(t, net.AddLink(0, i))
	}

	// Degrees 3,1,1,1,0: mean 1.2, unbiased variance 1.2.
	s := degree.Summarize(net)
	assert.InDelta(t, 1.2, s.AverageDegree, 1e-12)
	assert.InDelta(t, 1.2, s.Variance, 1e-12)
	assert.Equal(t, 0, s.Min)
	assert.Equal(t, 3, s.Max)
	assert.Equal(t, 1, s.Isolated)
	assert.Equal(t, 2, s.Components)
	assert.Equal(t, []int{1, 3, 0, 1}, degree.Histogram(net))
}

func TestSummarize_SingleNode(t *testing.T) {
	net, err := core.NewNetwork(1)
	require.NoError(t, err)
	s := degree.Summarize(net)
	assert.Zero(t, s.Variance)
	assert.Equal(t, 1, s.Components)
	assert.Equal(t, []int{1}, degree.Histogram(net))
}
