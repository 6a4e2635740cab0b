package http

// AlgorithmRequest selects a network and overrides engine parameters.
// Zero-valued fields fall back to the configured defaults; HITS ignores
// the damping factor.
type AlgorithmRequest struct {
	NetworkType          string  `json:"network_type"`
	DampingFactor        float64 `json:"damping_factor"`
	MaxIterations        int     `json:"max_iterations"`
	ConvergenceThreshold float64 `json:"convergence_threshold"`
	IncludeHistory       bool    `json:"include_history"`

	// Method picks the PageRank realization: "adjacency" (default) or
	// "matrix".
	Method string `json:"method,omitempty"`
}

// VisualizationNode is one node of the visualization payload. Placement
// is left to the client; no coordinates are produced here.
type VisualizationNode struct {
	ID        string   `json:"id"`
	Label     string   `json:"label"`
	PageRank  *float64 `json:"pagerank,omitempty"`
	Authority *float64 `json:"authority,omitempty"`
	Hub       *float64 `json:"hub,omitempty"`
	Size      *float64 `json:"size,omitempty"`
	Category  string   `json:"category"`
}

// VisualizationEdge is one directed edge of the visualization payload.
type VisualizationEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// VisualizationResponse is the full payload for graph rendering.
type VisualizationResponse struct {
	Nodes       []VisualizationNode `json:"nodes"`
	Edges       []VisualizationEdge `json:"edges"`
	NetworkInfo NetworkInfoRef      `json:"network_info"`
}

// NetworkInfoRef identifies the visualized network.
type NetworkInfoRef struct {
	Name string `json:"name"`
	Type string `json:"type"`
}
