// Package stats derives degree and density statistics from an indexed
// graph. Parallel edges count with their full multiplicity.
package stats

import "github.com/netrank-labs/netrank-backend/internal/linkanalysis/domain"

// Degree holds the in/out/total degree of a single node.
type Degree struct {
	InDegree    int `json:"in_degree"`
	OutDegree   int `json:"out_degree"`
	TotalDegree int `json:"total_degree"`
}

// NetworkStatistics summarizes a whole graph.
type NetworkStatistics struct {
	NumNodes  int     `json:"num_nodes"`
	NumEdges  int     `json:"num_edges"`
	Density   float64 `json:"density"`
	AvgDegree float64 `json:"avg_degree"`
}

// NodeDegrees returns per-node degree counts keyed by label.
func NodeDegrees(g *domain.Graph) map[string]Degree {
	degrees := make(map[string]Degree, g.NumNodes())
	for i, label := range g.Labels {
		in := g.InDegree(i)
		out := g.OutDegree(i)
		degrees[label] = Degree{
			InDegree:    in,
			OutDegree:   out,
			TotalDegree: in + out,
		}
	}
	return degrees
}

// Statistics computes graph-level statistics. Density is defined as
// e/(n*(n-1)) and guarded to 0 for graphs with fewer than two nodes.
func Statistics(g *domain.Graph) NetworkStatistics {
	n := g.NumNodes()
	e := g.NumEdges

	s := NetworkStatistics{
		NumNodes: n,
		NumEdges: e,
	}
	if n > 1 {
		s.Density = float64(e) / float64(n*(n-1))
	}
	if n > 0 {
		// Every edge contributes one in-degree and one out-degree.
		s.AvgDegree = float64(2*e) / float64(n)
	}
	return s
}
