package layout

// Edge is an unordered pair of node IDs, stored with A < B.
type Edge struct {
	A int `json:"a"`
	B int `json:"b"`
}

// RingEdges builds the fixed ring topology over n nodes: exactly n edges
// {i, (i+1) mod n} forming a single cycle.
//
// Fails with INVALID_CONFIGURATION for n < 2; a ring needs at least two
// distinct nodes. The result is a cycle edge list, not a strict set: for
// n == 2 it contains the pair {0,1} twice, so every node count yields
// exactly n edges and every node has degree 2.
func RingEdges(n int) ([]Edge, error) {
	if err := validateNodeCount(n); err != nil {
		return nil, err
	}

	edges := make([]Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = normalize(i, (i+1)%n)
	}
	return edges, nil
}

// normalize orders an undirected edge so A < B.
func normalize(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}
