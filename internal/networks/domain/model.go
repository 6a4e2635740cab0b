package domain

import (
	"errors"

	analysis "github.com/netrank-labs/netrank-backend/internal/linkanalysis/domain"
)

var (
	// ErrNetworkNotFound is returned for an unknown network selector.
	ErrNetworkNotFound = errors.New("network not found")
)

// Network is a sample graph dataset loaded once at startup and treated
// as read-only for the process lifetime.
type Network struct {
	Type        string          `json:"type"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Nodes       []string        `json:"nodes"`
	Edges       []analysis.Edge `json:"edges"`
	CSVFile     string          `json:"csv_file"`
}

// Summary is the catalog entry for a network.
type Summary struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	NumNodes    int    `json:"num_nodes"`
	NumEdges    int    `json:"num_edges"`
}

// Summarize builds the catalog entry for n.
func (n *Network) Summarize() Summary {
	return Summary{
		Type:        n.Type,
		Name:        n.Name,
		Description: n.Description,
		NumNodes:    len(n.Nodes),
		NumEdges:    len(n.Edges),
	}
}
