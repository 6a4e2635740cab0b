package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	analysis "github.com/netrank-labs/netrank-backend/internal/linkanalysis/domain"
	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/stats"
	"github.com/netrank-labs/netrank-backend/internal/networks/domain"
	"github.com/netrank-labs/netrank-backend/internal/networks/repository"
)

// Handler serves the network catalog endpoints.
type Handler struct {
	store *repository.Store
}

// NewHandler creates the catalog handler over the loaded store.
func NewHandler(store *repository.Store) *Handler {
	return &Handler{store: store}
}

// NetworkInfo is the metadata-plus-statistics view of one network.
type NetworkInfo struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	NumNodes    int     `json:"num_nodes"`
	NumEdges    int     `json:"num_edges"`
	Density     float64 `json:"density"`
	AvgDegree   float64 `json:"avg_degree"`
}

// List handles GET /networks.
func (h *Handler) List(c *gin.Context) {
	networks := h.store.List()
	summaries := make([]domain.Summary, 0, len(networks))
	for _, n := range networks {
		summaries = append(summaries, n.Summarize())
	}
	c.JSON(http.StatusOK, gin.H{"networks": summaries})
}

// Info handles GET /networks/:type.
func (h *Handler) Info(c *gin.Context) {
	network, err := h.store.Get(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "network not found"})
		return
	}

	g := analysis.NewGraph(network.Nodes, network.Edges)
	s := stats.Statistics(g)

	c.JSON(http.StatusOK, NetworkInfo{
		Name:        network.Name,
		Description: network.Description,
		Type:        network.Type,
		NumNodes:    s.NumNodes,
		NumEdges:    s.NumEdges,
		Density:     s.Density,
		AvgDegree:   s.AvgDegree,
	})
}

// Degrees handles GET /networks/:type/degrees.
func (h *Handler) Degrees(c *gin.Context) {
	network, err := h.store.Get(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "network not found"})
		return
	}

	g := analysis.NewGraph(network.Nodes, network.Edges)
	c.JSON(http.StatusOK, gin.H{"node_degrees": stats.NodeDegrees(g)})
}

// Dataset handles GET /networks/:type/dataset.
func (h *Handler) Dataset(c *gin.Context) {
	network, err := h.store.Get(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "network not found"})
		return
	}

	sample := network.Edges
	if len(sample) > 10 {
		sample = sample[:10]
	}

	c.JSON(http.StatusOK, gin.H{
		"name":         network.Name,
		"description":  network.Description,
		"type":         network.Type,
		"csv_file":     network.CSVFile,
		"num_nodes":    len(network.Nodes),
		"num_edges":    len(network.Edges),
		"sample_edges": sample,
	})
}
