package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/domain"
	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/hits"
	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/pagerank"
	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/service"
	netdomain "github.com/netrank-labs/netrank-backend/internal/networks/domain"
	netrepo "github.com/netrank-labs/netrank-backend/internal/networks/repository"
)

// Defaults are the engine parameters applied when a request leaves them
// zero-valued.
type Defaults struct {
	DampingFactor        float64
	MaxIterations        int
	ConvergenceThreshold float64
}

// Handler serves the algorithm endpoints.
type Handler struct {
	analysis *service.AnalysisService
	store    *netrepo.Store
	defaults Defaults
}

// NewHandler creates the algorithm handler.
func NewHandler(analysis *service.AnalysisService, store *netrepo.Store, defaults Defaults) *Handler {
	return &Handler{analysis: analysis, store: store, defaults: defaults}
}

// RunPageRank handles POST /algorithms/pagerank.
func (h *Handler) RunPageRank(c *gin.Context) {
	req, network, ok := h.bindRequest(c)
	if !ok {
		return
	}

	cfg := pagerank.Config{
		DampingFactor:        req.DampingFactor,
		MaxIterations:        req.MaxIterations,
		ConvergenceThreshold: req.ConvergenceThreshold,
		IncludeHistory:       req.IncludeHistory,
	}

	result, err := h.analysis.RunPageRank(c.Request.Context(), network, cfg, service.PageRankMethod(req.Method))
	if err != nil {
		h.writeEngineError(c, err, "PageRank calculation failed")
		return
	}

	c.JSON(http.StatusOK, result)
}

// RunHITS handles POST /algorithms/hits.
func (h *Handler) RunHITS(c *gin.Context) {
	req, network, ok := h.bindRequest(c)
	if !ok {
		return
	}

	cfg := hits.Config{
		MaxIterations:        req.MaxIterations,
		ConvergenceThreshold: req.ConvergenceThreshold,
		IncludeHistory:       req.IncludeHistory,
	}

	result, err := h.analysis.RunHITS(c.Request.Context(), network, cfg)
	if err != nil {
		h.writeEngineError(c, err, "HITS calculation failed")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Compare handles POST /algorithms/compare.
func (h *Handler) Compare(c *gin.Context) {
	req, network, ok := h.bindRequest(c)
	if !ok {
		return
	}

	prCfg := pagerank.Config{
		DampingFactor:        req.DampingFactor,
		MaxIterations:        req.MaxIterations,
		ConvergenceThreshold: req.ConvergenceThreshold,
		IncludeHistory:       req.IncludeHistory,
	}
	hitsCfg := hits.Config{
		MaxIterations:        req.MaxIterations,
		ConvergenceThreshold: req.ConvergenceThreshold,
		IncludeHistory:       req.IncludeHistory,
	}

	result, err := h.analysis.Compare(c.Request.Context(), network, prCfg, hitsCfg)
	if err != nil {
		h.writeEngineError(c, err, "comparison failed")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Visualization handles GET /networks/:type/visualization.
func (h *Handler) Visualization(c *gin.Context) {
	network, err := h.store.Get(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "network not found"})
		return
	}

	includeScores := c.Query("include_scores") == "true"

	resp := VisualizationResponse{
		Nodes: make([]VisualizationNode, 0, len(network.Nodes)),
		Edges: make([]VisualizationEdge, 0, len(network.Edges)),
		NetworkInfo: NetworkInfoRef{
			Name: network.Name,
			Type: network.Type,
		},
	}

	for _, e := range network.Edges {
		resp.Edges = append(resp.Edges, VisualizationEdge{Source: e.Source, Target: e.Target})
	}

	if !includeScores {
		for _, node := range network.Nodes {
			resp.Nodes = append(resp.Nodes, VisualizationNode{ID: node, Label: node, Category: "regular"})
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	ctx := c.Request.Context()
	prResult, err := h.analysis.RunPageRank(ctx, network, h.defaultPageRankConfig(), service.MethodAdjacency)
	if err != nil {
		h.writeEngineError(c, err, "visualization generation failed")
		return
	}
	hitsResult, err := h.analysis.RunHITS(ctx, network, h.defaultHITSConfig())
	if err != nil {
		h.writeEngineError(c, err, "visualization generation failed")
		return
	}

	topPR := topSet(prResult.TopNodes)
	topAuth := topSet(hitsResult.TopAuthorities)
	topHub := topSet(hitsResult.TopHubs)

	for _, node := range network.Nodes {
		pr := prResult.NodeScores[node]
		auth := hitsResult.AuthorityScores[node]
		hub := hitsResult.HubScores[node]
		size := 10 + pr*100

		resp.Nodes = append(resp.Nodes, VisualizationNode{
			ID:        node,
			Label:     node,
			PageRank:  &pr,
			Authority: &auth,
			Hub:       &hub,
			Size:      &size,
			Category:  nodeCategory(node, topPR, topAuth, topHub),
		})
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) bindRequest(c *gin.Context) (AlgorithmRequest, *netdomain.Network, bool) {
	var req AlgorithmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return req, nil, false
	}

	if req.NetworkType == "" {
		req.NetworkType = "citation"
	}
	if req.DampingFactor == 0 {
		req.DampingFactor = h.defaults.DampingFactor
	}
	if req.MaxIterations == 0 {
		req.MaxIterations = h.defaults.MaxIterations
	}
	if req.ConvergenceThreshold == 0 {
		req.ConvergenceThreshold = h.defaults.ConvergenceThreshold
	}

	network, err := h.store.Get(req.NetworkType)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "network not found"})
		return req, nil, false
	}

	return req, network, true
}

// writeEngineError maps configuration errors to 400 and everything else
// to a generic 500; the computation is deterministic, so retries belong
// to the caller.
func (h *Handler) writeEngineError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrInvalidDampingFactor),
		errors.Is(err, domain.ErrInvalidMaxIterations),
		errors.Is(err, domain.ErrInvalidThreshold):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func (h *Handler) defaultPageRankConfig() pagerank.Config {
	return pagerank.Config{
		DampingFactor:        h.defaults.DampingFactor,
		MaxIterations:        h.defaults.MaxIterations,
		ConvergenceThreshold: h.defaults.ConvergenceThreshold,
	}
}

func (h *Handler) defaultHITSConfig() hits.Config {
	return hits.Config{
		MaxIterations:        h.defaults.MaxIterations,
		ConvergenceThreshold: h.defaults.ConvergenceThreshold,
	}
}

func topSet(top []domain.NodeScore) map[string]struct{} {
	set := make(map[string]struct{}, len(top))
	for _, ns := range top {
		set[ns.Node] = struct{}{}
	}
	return set
}

// nodeCategory mirrors the ranking-membership coloring used downstream.
func nodeCategory(node string, topPR, topAuth, topHub map[string]struct{}) string {
	_, inPR := topPR[node]
	_, inAuth := topAuth[node]
	_, inHub := topHub[node]

	switch {
	case inPR && inAuth:
		return "both_pagerank_authority"
	case inPR && inHub:
		return "both_pagerank_hub"
	case inPR:
		return "top_pagerank"
	case inAuth && inHub:
		return "both_authority_hub"
	case inAuth:
		return "top_authority"
	case inHub:
		return "top_hub"
	default:
		return "regular"
	}
}
