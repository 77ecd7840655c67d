// Package netgen generates synthetic undirected networks.
//
// 🚀 What is netgen?
//
//	A small, deterministic generator for the classic random-graph models:
//		• Erdős–Rényi G(n,p)
//		• Barabási–Albert preferential attachment
//		• Watts–Strogatz small world (ring + rewiring)
//		• 1D ring and 2D periodic lattices
//		• Complete, star, wheel and complete bipartite baselines
//
// Networks are index-based: nodes are 0..n-1 and each node keeps a sorted set
// of neighbor indices. Every stochastic model draws from an explicit
// random.Source, so a seed reproduces a network exactly.
//
// Layout:
//
//	random/   — Source contract, MT19937 (gonum prng), math/rand adapter, scripted Replay
//	core/     — Network adjacency store and read-only queries
//	builder/  — Constructors, BuildNetwork/Generate, functional options, Reconnect
//	degree/   — degree summary and histogram
//	convert/  — gonum graph and matrix views
//	config/   — koanf-backed run configuration (defaults, TOML, env, flags)
//	logging/  — slog façade with a compact console handler
//	cmd/netgen — CLI: generate one network and log its summary
//
// Quick start:
//
//	net, err := builder.BuildNetwork(10000, builder.BarabasiAlbert(3), builder.WithSeed(7))
//	if err != nil { … }
//	fmt.Println(net.AverageDegree())
//
//	go install github.com/katalvlaran/netgen/cmd/netgen@latest
package netgen
