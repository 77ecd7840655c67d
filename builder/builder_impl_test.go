// File: builder_impl_test.go
// Package builder_test contains functional tests for every Constructor,
// verifying topology, link counts, sentinel errors and reproducibility.
package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/netgen/builder"
	"github.com/katalvlaran/netgen/convert"
	"github.com/katalvlaran/netgen/core"
	"github.com/katalvlaran/netgen/random"
)

// links returns every link of net as (i<j) pairs in ascending order.
func links(net *core.Network) [][2]int {
	var out [][2]int
	net.ForEachLink(func(i, j int) bool {
		out = append(out, [2]int{i, j})
		return true
	})
	return out
}

// requireWellFormed asserts symmetry and absence of self-loops.
func requireWellFormed(t *testing.T, net *core.Network) {
	t.Helper()
	require.NoError(t, net.Validate())
	for i := 0; i < net.Order(); i++ {
		require.False(t, net.HasLink(i, i), "self-loop at %d", i)
	}
}

func requireConnected(t *testing.T, net *core.Network) {
	t.Helper()
	require.Len(t, topo.ConnectedComponents(convert.ToUndirected(net)), 1)
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		n           int
		ctor        builder.Constructor
		opts        []builder.BuilderOption
		wantE       int
		sampleCheck func(t *testing.T, net *core.Network)
	}{
		{
			name: "Lattice1D(6)", n: 6, ctor: builder.Lattice1D(), wantE: 6,
			sampleCheck: func(t *testing.T, net *core.Network) {
				for i := 0; i < 6; i++ {
					require.Equal(t, 2, net.Degree(i))
					require.True(t, net.HasLink(i, (i+1)%6))
				}
				requireConnected(t, net)
			},
		},
		{
			name: "Lattice2D(16)", n: 16, ctor: builder.Lattice2D(), wantE: 32,
			sampleCheck: func(t *testing.T, net *core.Network) {
				for i := 0; i < 16; i++ {
					require.Equal(t, 4, net.Degree(i), "node %d", i)
				}
				// Wraparound: (0,3)—(0,0) and (3,0)—(0,0).
				require.True(t, net.HasLink(0, 3))
				require.True(t, net.HasLink(0, 12))
				require.Equal(t, []int{1, 3, 4, 12}, net.Neighbors(0))
				requireConnected(t, net)
			},
		},
		{
			name: "Lattice2D(17) truncate", n: 17, ctor: builder.Lattice2D(),
			opts:  []builder.BuilderOption{builder.WithLattice2DPolicy(builder.LatticeTruncate)},
			wantE: 32,
			sampleCheck: func(t *testing.T, net *core.Network) {
				for i := 0; i < 16; i++ {
					require.Equal(t, 4, net.Degree(i))
				}
				require.Zero(t, net.Degree(16), "leftover node stays isolated")
			},
		},
		{
			name: "Complete(5)", n: 5, ctor: builder.Complete(), wantE: 10,
			sampleCheck: func(t *testing.T, net *core.Network) {
				require.InDelta(t, 4.0, net.AverageDegree(), 1e-12)
			},
		},
		{
			name: "Star(7)", n: 7, ctor: builder.Star(), wantE: 6,
			sampleCheck: func(t *testing.T, net *core.Network) {
				require.Equal(t, 6, net.Degree(0))
				for i := 1; i < 7; i++ {
					require.Equal(t, []int{0}, net.Neighbors(i))
				}
			},
		},
		{
			name: "Wheel(6)", n: 6, ctor: builder.Wheel(), wantE: 10,
			sampleCheck: func(t *testing.T, net *core.Network) {
				require.Equal(t, 5, net.Degree(0))
				for i := 1; i < 6; i++ {
					require.Equal(t, 3, net.Degree(i), "rim node %d", i)
				}
				require.True(t, net.HasLink(5, 1), "rim closes")
			},
		},
		{
			name: "CompleteBipartite(2,3)", n: 5, ctor: builder.CompleteBipartite(2), wantE: 6,
			sampleCheck: func(t *testing.T, net *core.Network) {
				require.Equal(t, []int{2, 3, 4}, net.Neighbors(0))
				require.Equal(t, []int{0, 1}, net.Neighbors(4))
				require.False(t, net.HasLink(0, 1))
			},
		},
		{
			name: "ErdosRenyi(p=0)", n: 20, ctor: builder.ErdosRenyi(0),
			opts: []builder.BuilderOption{builder.WithSeed(1)}, wantE: 0,
		},
		{
			name: "ErdosRenyi(p=1)", n: 20, ctor: builder.ErdosRenyi(1),
			opts: []builder.BuilderOption{builder.WithSeed(1)}, wantE: 190,
		},
		{
			name: "BarabasiAlbert(n=100,m=3)", n: 100, ctor: builder.BarabasiAlbert(3),
			opts:  []builder.BuilderOption{builder.WithSeed(2024)},
			wantE: 6 + 96*3,
			sampleCheck: func(t *testing.T, net *core.Network) {
				for i := 0; i < 100; i++ {
					require.GreaterOrEqual(t, net.Degree(i), 3, "node %d", i)
				}
				requireConnected(t, net)
			},
		},
		{
			name: "WattsStrogatz(p=0)", n: 10, ctor: builder.WattsStrogatz(2, 0),
			opts: []builder.BuilderOption{builder.WithSeed(3)}, wantE: 20,
			sampleCheck: func(t *testing.T, net *core.Network) {
				for i := 0; i < 10; i++ {
					require.Equal(t, 4, net.Degree(i))
					require.True(t, net.HasLink(i, (i+1)%10))
					require.True(t, net.HasLink(i, (i+2)%10))
				}
			},
		},
		{
			name: "WattsStrogatz(p=1)", n: 50, ctor: builder.WattsStrogatz(3, 1),
			opts: []builder.BuilderOption{builder.WithSeed(3)}, wantE: 150,
			sampleCheck: func(t *testing.T, net *core.Network) {
				require.InDelta(t, 6.0, net.AverageDegree(), 1e-12)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			net, err := builder.BuildNetwork(tc.n, tc.ctor, tc.opts...)
			require.NoError(t, err)
			require.Equal(t, tc.n, net.Order())
			require.Equal(t, tc.wantE, net.EdgeCount())
			requireWellFormed(t, net)
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, net)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	seeded := []builder.BuilderOption{builder.WithSeed(1)}
	tests := []struct {
		name string
		n    int
		ctor builder.Constructor
		opts []builder.BuilderOption
		want []error
	}{
		{"n=0", 0, builder.Lattice1D(), nil, []error{builder.ErrInvalidArgument, builder.ErrTooFewVertices}},
		{"nil constructor", 3, nil, nil, []error{builder.ErrConstructFailed}},
		{"ER p<0", 5, builder.ErdosRenyi(-0.1), seeded, []error{builder.ErrInvalidProbability, builder.ErrInvalidArgument}},
		{"ER p>1", 5, builder.ErdosRenyi(1.1), seeded, []error{builder.ErrInvalidProbability, builder.ErrInvalidArgument}},
		{"ER no source", 5, builder.ErdosRenyi(0.5), nil, []error{builder.ErrNeedRandSource}},
		{"BA m=0", 5, builder.BarabasiAlbert(0), seeded, []error{builder.ErrInvalidArgument}},
		{"BA m=n", 5, builder.BarabasiAlbert(5), seeded, []error{builder.ErrInvalidArgument}},
		{"BA no source", 5, builder.BarabasiAlbert(2), nil, []error{builder.ErrNeedRandSource}},
		{"SW r=0", 10, builder.WattsStrogatz(0, 0.1), seeded, []error{builder.ErrInvalidArgument}},
		{"SW 2r=n", 10, builder.WattsStrogatz(5, 0.1), seeded, []error{builder.ErrInvalidArgument}},
		{"ER p=NaN", 5, builder.ErdosRenyi(math.NaN()), seeded, []error{builder.ErrInvalidProbability, builder.ErrInvalidArgument}},
		{"SW p<0", 10, builder.WattsStrogatz(2, -0.1), seeded, []error{builder.ErrInvalidProbability, builder.ErrInvalidArgument}},
		{"SW p>1", 10, builder.WattsStrogatz(2, 2), seeded, []error{builder.ErrInvalidProbability, builder.ErrInvalidArgument}},
		{"SW no source", 10, builder.WattsStrogatz(2, 0.1), nil, []error{builder.ErrNeedRandSource}},
		{"L1D n=2", 2, builder.Lattice1D(), nil, []error{builder.ErrInvalidArgument, builder.ErrTooFewVertices}},
		{"L2D n=4", 4, builder.Lattice2D(), nil, []error{builder.ErrTooFewVertices}},
		{"L2D n=17", 17, builder.Lattice2D(), nil, []error{builder.ErrNotSquare}},
		{"Star n=1", 1, builder.Star(), nil, []error{builder.ErrTooFewVertices}},
		{"Wheel n=3", 3, builder.Wheel(), nil, []error{builder.ErrTooFewVertices}},
		{"Bipartite left=0", 4, builder.CompleteBipartite(0), nil, []error{builder.ErrTooFewVertices}},
		{"Bipartite right=0", 4, builder.CompleteBipartite(4), nil, []error{builder.ErrInvalidArgument}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			net, err := builder.BuildNetwork(tc.n, tc.ctor, tc.opts...)
			require.Nil(t, net)
			for _, want := range tc.want {
				require.ErrorIs(t, err, want)
			}
		})
	}
}

func TestGenerate_RequiresEmptyNetwork(t *testing.T) {
	net, err := core.NewNetwork(6)
	require.NoError(t, err)
	require.NoError(t, builder.Generate(net, builder.Lattice1D()))

	err = builder.Generate(net, builder.ErdosRenyi(0.5), builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrNetworkNotEmpty)

	net.Teardown()
	require.NoError(t, builder.Generate(net, builder.ErdosRenyi(0.5), builder.WithSeed(1)))
	require.ErrorIs(t, builder.Generate(nil, builder.Lattice1D()), builder.ErrConstructFailed)
}

func TestErdosRenyi_DrawOrder(t *testing.T) {
	// Pairs are tried as (0,1), (0,2), (1,2).
	src := random.NewReplay(0.1, 0.9, 0.4)
	net, err := builder.BuildNetwork(3, builder.ErdosRenyi(0.5), builder.WithSource(src))
	require.NoError(t, err)
	require.Equal(t, [][2]int{{0, 1}, {1, 2}}, links(net))
	require.Equal(t, 3, src.Calls())
}

func TestErdosRenyi_ConsumesOneDrawPerPair(t *testing.T) {
	for _, p := range []float64{0, 0.3, 1} {
		src := random.NewReplay(0.5)
		_, err := builder.BuildNetwork(30, builder.ErdosRenyi(p), builder.WithSource(src))
		require.NoError(t, err)
		require.Equal(t, 30*29/2, src.Calls(), "p=%v", p)
	}
}

func TestErdosRenyi_EdgeCountConcentrates(t *testing.T) {
	if testing.Short() {
		t.Skip("large sample")
	}
	const (
		n      = 1000
		p      = 0.01
		trials = 5
	)
	pairs := float64(n * (n - 1) / 2)
	expected := p * pairs
	sd := math.Sqrt(pairs * p * (1 - p))

	counts := make([]float64, trials)
	for s := 0; s < trials; s++ {
		net, err := builder.BuildNetwork(n, builder.ErdosRenyi(p), builder.WithSeed(uint64(s+1)))
		require.NoError(t, err)
		counts[s] = float64(net.EdgeCount())
		require.InDelta(t, expected, counts[s], 5*sd, "trial %d", s)
	}
	require.InDelta(t, expected, stat.Mean(counts, nil), 4*sd)
}

func TestErdosRenyi_Reproducible(t *testing.T) {
	a, err := builder.BuildNetwork(200, builder.ErdosRenyi(0.05), builder.WithSeed(99))
	require.NoError(t, err)
	b, err := builder.BuildNetwork(200, builder.ErdosRenyi(0.05), builder.WithSeed(99))
	require.NoError(t, err)
	require.Equal(t, links(a), links(b))

	c, err := builder.BuildNetwork(200, builder.ErdosRenyi(0.05), builder.WithSeed(100))
	require.NoError(t, err)
	require.NotEqual(t, links(a), links(c))
}

func TestBarabasiAlbert_ScriptedDraws(t *testing.T) {
	for _, sel := range []builder.Selection{builder.SelectFenwick, builder.SelectLinear} {
		t.Run(sel.String(), func(t *testing.T) {
			// m=1: seed {0—1}, pool 2.
			//   node 2: 2·0.4=0.8  → node 0 (cum 1).
			//   node 3: 4·0.6=2.4  → node 1 (cum 2,3).
			//   node 4: 6·0.99=5.94 → node 3 (cum 2,4,5,6).
			src := random.NewReplay(0.4, 0.6, 0.99)
			net, err := builder.BuildNetwork(5, builder.BarabasiAlbert(1),
				builder.WithSource(src), builder.WithSelection(sel))
			require.NoError(t, err)
			require.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 3}, {3, 4}}, links(net))
			require.Equal(t, 3, src.Calls())
		})
	}
}

func TestBarabasiAlbert_RejectsExistingNeighbor(t *testing.T) {
	// m=2: seed triangle, pool 6.
	//   6·0.1=0.6 → node 0, accepted (pool 7, deg0=3).
	//   7·0.2=1.4 → node 0 again, rejected.
	//   7·0.5=3.5 → node 1 (cum 3,5), accepted.
	src := random.NewReplay(0.1, 0.2, 0.5)
	net, err := builder.BuildNetwork(4, builder.BarabasiAlbert(2), builder.WithSource(src))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, net.Neighbors(3))
	require.Equal(t, 3, src.Calls())
}

func TestBarabasiAlbert_SelectionsAgree(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		fen, err := builder.BuildNetwork(300, builder.BarabasiAlbert(4),
			builder.WithSeed(seed), builder.WithSelection(builder.SelectFenwick))
		require.NoError(t, err)
		lin, err := builder.BuildNetwork(300, builder.BarabasiAlbert(4),
			builder.WithSeed(seed), builder.WithSelection(builder.SelectLinear))
		require.NoError(t, err)
		require.Equal(t, links(lin), links(fen), "seed %d", seed)
	}
}

func TestBarabasiAlbert_SeedOnly(t *testing.T) {
	// n = m+1: the seed clique is the whole network and no draws happen.
	src := random.NewReplay(0.5)
	net, err := builder.BuildNetwork(4, builder.BarabasiAlbert(3), builder.WithSource(src))
	require.NoError(t, err)
	require.Equal(t, 6, net.EdgeCount())
	require.Zero(t, src.Calls())
}

func TestWattsStrogatz_PreservesLinkCount(t *testing.T) {
	for _, p := range []float64{0.05, 0.2, 0.7} {
		net, err := builder.BuildNetwork(500, builder.WattsStrogatz(2, p), builder.WithSeed(11))
		require.NoError(t, err)
		require.Equal(t, 1000, net.EdgeCount(), "p=%v", p)
		require.InDelta(t, 4.0, net.AverageDegree(), 1e-12)
		requireWellFormed(t, net)
	}
}

func TestWattsStrogatz_ScriptedRewire(t *testing.T) {
	// n=5, r=1: ring 0-1-2-3-4-0. Trials (i,i+1): only (0,1) passes
	// (0.1 < 0.5), then Reconnect draws ⌊5·0.5⌋=2.
	src := random.NewReplay(0.1, 0.5, 0.9, 0.9, 0.9, 0.9)
	net, err := builder.BuildNetwork(5, builder.WattsStrogatz(1, 0.5), builder.WithSource(src))
	require.NoError(t, err)
	require.Equal(t, [][2]int{{0, 2}, {0, 4}, {1, 2}, {2, 3}, {3, 4}}, links(net))
	require.Equal(t, 6, src.Calls())
}
