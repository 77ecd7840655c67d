// Package degree summarizes the degree sequence of a generated network:
// extremes, mean and variance (gonum/stat), the degree histogram and the
// number of connected components (gonum/graph/topo), and for small networks
// the adjacency spectral radius (gonum/mat).
package degree
