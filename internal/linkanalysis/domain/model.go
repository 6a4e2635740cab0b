package domain

// Edge is a directed link from Source to Target. Parallel edges and
// self-loops are legal and carry their full multiplicity.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Graph is the indexed form of a node/edge list: labels mapped to dense
// 0-based positions in insertion order, with forward and reverse
// adjacency lists. Edges referencing unknown labels are dropped during
// construction; the result is the induced subgraph on valid endpoints.
// A Graph is immutable once built and safe for concurrent reads.
type Graph struct {
	Labels []string       `json:"labels"`
	Idx    map[string]int `json:"-"`

	// Out[i] and In[i] list neighbor positions per edge instance,
	// duplicates retained.
	Out [][]int `json:"-"`
	In  [][]int `json:"-"`

	NumEdges int `json:"num_edges"`
}

// NewGraph indexes the given labels and edges. Labels keep their input
// order; edge endpoints not present among the labels are ignored.
func NewGraph(labels []string, edges []Edge) *Graph {
	n := len(labels)
	g := &Graph{
		Labels: append([]string(nil), labels...),
		Idx:    make(map[string]int, n),
		Out:    make([][]int, n),
		In:     make([][]int, n),
	}

	for i, label := range labels {
		g.Idx[label] = i
	}

	for _, e := range edges {
		src, okSrc := g.Idx[e.Source]
		dst, okDst := g.Idx[e.Target]
		if !okSrc || !okDst {
			continue
		}
		g.Out[src] = append(g.Out[src], dst)
		g.In[dst] = append(g.In[dst], src)
		g.NumEdges++
	}

	return g
}

// NumNodes returns the node count.
func (g *Graph) NumNodes() int {
	return len(g.Labels)
}

// OutDegree returns the number of out-edges of node i, with multiplicity.
func (g *Graph) OutDegree(i int) int {
	return len(g.Out[i])
}

// InDegree returns the number of in-edges of node i, with multiplicity.
func (g *Graph) InDegree(i int) int {
	return len(g.In[i])
}
