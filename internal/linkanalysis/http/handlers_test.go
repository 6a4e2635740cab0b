package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/service"
	"github.com/netrank-labs/netrank-backend/internal/networks/repository"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	citation := "source,target\np1,p2\np3,p2\np3,p1\np2,p1\n"
	social := "source,target\nalice,bob\nbob,carol\ncarol,alice\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "citation_network.csv"), []byte(citation), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "social_network.csv"), []byte(social), 0o644))

	store, err := repository.NewStore(dir)
	require.NoError(t, err)

	defaults := Defaults{
		DampingFactor:        0.85,
		MaxIterations:        100,
		ConvergenceThreshold: 0.0001,
	}

	r := gin.New()
	NewHandler(service.NewAnalysisService(nil), store, defaults).Register(r.Group("/api/v1"))
	return r
}

func doPost(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRunPageRank(t *testing.T) {
	r := newTestRouter(t)

	t.Run("defaults to the citation network", func(t *testing.T) {
		w := doPost(r, "/api/v1/algorithms/pagerank", AlgorithmRequest{})
		require.Equal(t, http.StatusOK, w.Code)

		var result struct {
			NodeScores    map[string]float64 `json:"node_scores"`
			Iterations    int                `json:"iterations"`
			DampingFactor float64            `json:"damping_factor"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Len(t, result.NodeScores, 3)
		assert.Positive(t, result.Iterations)
		assert.InDelta(t, 0.85, result.DampingFactor, 1e-12)

		var sum float64
		for _, s := range result.NodeScores {
			sum += s
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("honors parameter overrides", func(t *testing.T) {
		w := doPost(r, "/api/v1/algorithms/pagerank", AlgorithmRequest{
			NetworkType:   "social",
			DampingFactor: 0.5,
			MaxIterations: 3,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var result struct {
			Iterations    int     `json:"iterations"`
			DampingFactor float64 `json:"damping_factor"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.LessOrEqual(t, result.Iterations, 3)
		assert.InDelta(t, 0.5, result.DampingFactor, 1e-12)
	})

	t.Run("returns history when requested", func(t *testing.T) {
		w := doPost(r, "/api/v1/algorithms/pagerank", AlgorithmRequest{IncludeHistory: true})
		require.Equal(t, http.StatusOK, w.Code)

		var result struct {
			History []struct {
				Iteration int                `json:"iteration"`
				Scores    map[string]float64 `json:"scores"`
			} `json:"history"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		require.NotEmpty(t, result.History)
		assert.Equal(t, 1, result.History[0].Iteration)
	})

	t.Run("matrix method matches adjacency", func(t *testing.T) {
		adjW := doPost(r, "/api/v1/algorithms/pagerank", AlgorithmRequest{})
		matW := doPost(r, "/api/v1/algorithms/pagerank", AlgorithmRequest{Method: "matrix"})
		require.Equal(t, http.StatusOK, adjW.Code)
		require.Equal(t, http.StatusOK, matW.Code)

		var adj, mat struct {
			NodeScores map[string]float64 `json:"node_scores"`
		}
		require.NoError(t, json.Unmarshal(adjW.Body.Bytes(), &adj))
		require.NoError(t, json.Unmarshal(matW.Body.Bytes(), &mat))
		for node, score := range adj.NodeScores {
			assert.InDelta(t, score, mat.NodeScores[node], 1e-9, "node %s", node)
		}
	})

	t.Run("unknown network returns 404", func(t *testing.T) {
		w := doPost(r, "/api/v1/algorithms/pagerank", AlgorithmRequest{NetworkType: "ghost"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("out-of-range damping returns 400", func(t *testing.T) {
		w := doPost(r, "/api/v1/algorithms/pagerank", AlgorithmRequest{DampingFactor: 1.5})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative iterations return 400", func(t *testing.T) {
		w := doPost(r, "/api/v1/algorithms/pagerank", AlgorithmRequest{MaxIterations: -1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRunHITS(t *testing.T) {
	r := newTestRouter(t)

	w := doPost(r, "/api/v1/algorithms/hits", AlgorithmRequest{NetworkType: "citation"})
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		AuthorityScores map[string]float64 `json:"authority_scores"`
		HubScores       map[string]float64 `json:"hub_scores"`
		TopAuthorities  []struct {
			Node string `json:"node"`
		} `json:"top_authorities"`
		Iterations int `json:"iterations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result.AuthorityScores, 3)
	assert.Len(t, result.HubScores, 3)
	assert.NotEmpty(t, result.TopAuthorities)
	assert.Positive(t, result.Iterations)
}

func TestCompare(t *testing.T) {
	r := newTestRouter(t)

	w := doPost(r, "/api/v1/algorithms/compare", AlgorithmRequest{NetworkType: "citation"})
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		PageRank           json.RawMessage `json:"pagerank"`
		HITS               json.RawMessage `json:"hits"`
		OverlapAuthorities []string        `json:"overlap_authorities"`
		OverlapHubs        []string        `json:"overlap_hubs"`
		Insights           []string        `json:"insights"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.NotNil(t, result.PageRank)
	assert.NotNil(t, result.HITS)
	assert.NotNil(t, result.OverlapAuthorities)
	assert.NotEmpty(t, result.Insights)
}

func TestVisualization(t *testing.T) {
	r := newTestRouter(t)

	t.Run("without scores", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/networks/citation/visualization", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp VisualizationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Nodes, 3)
		assert.Len(t, resp.Edges, 4)
		for _, node := range resp.Nodes {
			assert.Equal(t, "regular", node.Category)
			assert.Nil(t, node.PageRank)
		}
	})

	t.Run("with scores", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/networks/citation/visualization?include_scores=true", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp VisualizationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Nodes, 3)
		for _, node := range resp.Nodes {
			require.NotNil(t, node.PageRank, "node %s", node.ID)
			require.NotNil(t, node.Size, "node %s", node.ID)
			assert.Greater(t, *node.Size, 10.0)
			assert.NotEqual(t, "regular", node.Category)
		}
	})

	t.Run("unknown network returns 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/networks/ghost/visualization", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
