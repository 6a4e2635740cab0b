package pagerank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/domain"
)

func cycleGraph() *domain.Graph {
	return domain.NewGraph([]string{"A", "B", "C"}, []domain.Edge{
		{Source: "A", Target: "B"},
		{Source: "B", Target: "C"},
		{Source: "C", Target: "A"},
	})
}

func citationGraph() *domain.Graph {
	return domain.NewGraph([]string{"A", "B", "C", "D", "E"}, []domain.Edge{
		{Source: "A", Target: "B"},
		{Source: "B", Target: "C"},
		{Source: "C", Target: "A"},
		{Source: "D", Target: "A"},
		{Source: "D", Target: "B"},
		{Source: "E", Target: "A"},
	})
}

func sumScores(scores map[string]float64) float64 {
	var total float64
	for _, s := range scores {
		total += s
	}
	return total
}

func TestCalculate_ThreeCycle(t *testing.T) {
	result, err := Calculate(cycleGraph(), DefaultConfig())
	require.NoError(t, err)

	// Perfect symmetry: uniform init is already the fixed point.
	assert.Equal(t, 1, result.Iterations)
	for node, score := range result.NodeScores {
		assert.InDelta(t, 1.0/3.0, score, 1e-9, "node %s", node)
	}
}

func TestCalculate_CitedSinkOutranksCiter(t *testing.T) {
	g := domain.NewGraph([]string{"A", "B"}, []domain.Edge{{Source: "A", Target: "B"}})

	result, err := Calculate(g, DefaultConfig())
	require.NoError(t, err)

	assert.Greater(t, result.NodeScores["B"], result.NodeScores["A"])
	assert.Equal(t, "B", result.TopNodes[0].Node)
}

func TestCalculate_EmptyGraph(t *testing.T) {
	result, err := Calculate(domain.NewGraph(nil, nil), DefaultConfig())
	require.NoError(t, err)

	assert.Empty(t, result.NodeScores)
	assert.Empty(t, result.TopNodes)
	assert.Equal(t, 0, result.Iterations)
}

func TestCalculate_SingleNode(t *testing.T) {
	result, err := Calculate(domain.NewGraph([]string{"A"}, nil), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Iterations)
	assert.InDelta(t, 1.0, result.NodeScores["A"], 1e-12)
}

func TestCalculate_IsolatedNode(t *testing.T) {
	// 3-cycle plus an untouched node D. D receives only teleportation
	// mass and its own uniformly leaked rank, giving the fixed point
	// x = (1-d)/(n-d) = 1/21 for d=0.85, n=4.
	g := domain.NewGraph([]string{"A", "B", "C", "D"}, []domain.Edge{
		{Source: "A", Target: "B"},
		{Source: "B", Target: "C"},
		{Source: "C", Target: "A"},
	})

	cfg := DefaultConfig()
	cfg.ConvergenceThreshold = 1e-9
	result, err := Calculate(g, cfg)
	require.NoError(t, err)

	assert.InDelta(t, 1.0/21.0, result.NodeScores["D"], 1e-6)
	assert.Greater(t, result.NodeScores["A"], result.NodeScores["D"])
}

func TestCalculate_ScoresSumToOne(t *testing.T) {
	for _, g := range []*domain.Graph{cycleGraph(), citationGraph()} {
		result, err := Calculate(g, DefaultConfig())
		require.NoError(t, err)
		assert.InDelta(t, 1.0, sumScores(result.NodeScores), 1e-9)
	}
}

func TestCalculate_DanglingMassIsConserved(t *testing.T) {
	// B and E have no out-edges; every iteration must redistribute
	// their mass rather than lose it, so the raw pre-rescale vector of
	// every recorded iteration still sums to 1.
	g := domain.NewGraph([]string{"A", "B", "C", "D", "E"}, []domain.Edge{
		{Source: "A", Target: "B"},
		{Source: "C", Target: "B"},
		{Source: "C", Target: "E"},
		{Source: "D", Target: "A"},
	})

	cfg := DefaultConfig()
	cfg.IncludeHistory = true
	result, err := Calculate(g, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, result.History)

	for _, snapshot := range result.History {
		assert.InDelta(t, 1.0, sumScores(snapshot.Scores), 1e-9,
			"iteration %d", snapshot.Iteration)
		for node, score := range snapshot.Scores {
			assert.GreaterOrEqual(t, score, 0.0, "iteration %d node %s", snapshot.Iteration, node)
		}
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	first, err := Calculate(citationGraph(), DefaultConfig())
	require.NoError(t, err)
	second, err := Calculate(citationGraph(), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, first.TopNodes, second.TopNodes)
	assert.Equal(t, first.Iterations, second.Iterations)
	assert.Equal(t, first.NodeScores, second.NodeScores)
}

func TestCalculate_TighterThresholdNeverFewerIterations(t *testing.T) {
	prev := 0
	for _, threshold := range []float64{1e-2, 1e-4, 1e-6, 1e-8} {
		cfg := DefaultConfig()
		cfg.ConvergenceThreshold = threshold

		result, err := Calculate(citationGraph(), cfg)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Iterations, prev, "threshold %g", threshold)
		prev = result.Iterations
	}
}

func TestCalculate_HistoryDisabledByDefault(t *testing.T) {
	result, err := Calculate(citationGraph(), DefaultConfig())
	require.NoError(t, err)
	assert.Nil(t, result.History)
}

func TestCalculate_ConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"damping zero", Config{DampingFactor: 0, MaxIterations: 10, ConvergenceThreshold: 1e-4}},
		{"damping one", Config{DampingFactor: 1, MaxIterations: 10, ConvergenceThreshold: 1e-4}},
		{"no iterations", Config{DampingFactor: 0.85, MaxIterations: 0, ConvergenceThreshold: 1e-4}},
		{"zero threshold", Config{DampingFactor: 0.85, MaxIterations: 10, ConvergenceThreshold: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Calculate(cycleGraph(), tc.cfg)
			assert.Error(t, err)
		})
	}
}

func TestCalculateMatrix_MatchesAdjacency(t *testing.T) {
	graphs := map[string]*domain.Graph{
		"cycle":    cycleGraph(),
		"citation": citationGraph(),
		"dangling": domain.NewGraph([]string{"A", "B", "C"}, []domain.Edge{
			{Source: "A", Target: "B"},
			{Source: "A", Target: "C"},
		}),
		"parallel edges": domain.NewGraph([]string{"A", "B", "C"}, []domain.Edge{
			{Source: "A", Target: "B"},
			{Source: "A", Target: "B"},
			{Source: "B", Target: "C"},
			{Source: "C", Target: "A"},
		}),
	}

	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			adj, err := Calculate(g, DefaultConfig())
			require.NoError(t, err)
			mat, err := CalculateMatrix(g, DefaultConfig())
			require.NoError(t, err)

			assert.Equal(t, adj.Iterations, mat.Iterations)
			for node, score := range adj.NodeScores {
				assert.InDelta(t, score, mat.NodeScores[node], 1e-9, "node %s", node)
			}
		})
	}
}

func TestCalculateMatrix_EmptyGraph(t *testing.T) {
	result, err := CalculateMatrix(domain.NewGraph(nil, nil), DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Iterations)
	assert.Empty(t, result.NodeScores)
}
