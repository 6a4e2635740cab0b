// Package pagerank implements the damped random-walk ranking:
//
//	PR(i) = (1-d)/n + d * Σ PR(j)/outdeg(j) over in-neighbors j
//
// Nodes without out-edges leak their rank uniformly over the whole
// graph instead of losing it, so every iteration preserves total mass.
package pagerank

import (
	"math"

	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/domain"
)

const (
	DefaultDampingFactor        = 0.85
	DefaultMaxIterations        = 100
	DefaultConvergenceThreshold = 0.0001

	// TopN is the size of the ranked head returned with every result.
	TopN = 5
)

// Config controls a single PageRank computation.
type Config struct {
	DampingFactor        float64
	MaxIterations        int
	ConvergenceThreshold float64

	// IncludeHistory records the raw (pre-rescale) score vector of
	// every iteration on the result.
	IncludeHistory bool
}

// DefaultConfig returns the standard 0.85 / 100 / 1e-4 configuration.
func DefaultConfig() Config {
	return Config{
		DampingFactor:        DefaultDampingFactor,
		MaxIterations:        DefaultMaxIterations,
		ConvergenceThreshold: DefaultConvergenceThreshold,
	}
}

// Validate checks the configured parameters.
func (c Config) Validate() error {
	if c.DampingFactor <= 0 || c.DampingFactor >= 1 {
		return domain.ErrInvalidDampingFactor
	}
	if c.MaxIterations <= 0 {
		return domain.ErrInvalidMaxIterations
	}
	if c.ConvergenceThreshold <= 0 {
		return domain.ErrInvalidThreshold
	}
	return nil
}

// IterationSnapshot is the raw score vector observed after one iteration.
type IterationSnapshot struct {
	Iteration int                `json:"iteration"`
	Scores    map[string]float64 `json:"scores"`
}

// Result is the immutable outcome of one PageRank computation.
type Result struct {
	NodeScores           map[string]float64  `json:"node_scores"`
	TopNodes             []domain.NodeScore  `json:"top_nodes"`
	Iterations           int                 `json:"iterations"`
	ConvergenceThreshold float64             `json:"convergence_threshold"`
	DampingFactor        float64             `json:"damping_factor"`
	History              []IterationSnapshot `json:"history,omitempty"`
}

// Calculate runs the adjacency-list realization of PageRank on g until
// the L1 delta between consecutive iterations falls below the
// configured threshold or the iteration cap is hit.
func Calculate(g *domain.Graph, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := g.NumNodes()
	if n == 0 {
		return emptyResult(cfg), nil
	}

	d := cfg.DampingFactor
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}

	var history []IterationSnapshot

	iterations := 0
	for iter := 0; iter < cfg.MaxIterations; iter++ {
		// Mass of dangling nodes, reinvested uniformly across the
		// whole graph (self included) so columns stay stochastic.
		dangling := 0.0
		for j := 0; j < n; j++ {
			if g.OutDegree(j) == 0 {
				dangling += scores[j]
			}
		}

		base := (1-d)/float64(n) + d*dangling/float64(n)

		next := make([]float64, n)
		for i := 0; i < n; i++ {
			sum := base
			for _, j := range g.In[i] {
				sum += d * scores[j] / float64(g.OutDegree(j))
			}
			next[i] = sum
		}

		diff := l1Distance(next, scores)
		scores = next
		iterations = iter + 1

		if cfg.IncludeHistory {
			history = append(history, IterationSnapshot{
				Iteration: iterations,
				Scores:    domain.ScoreMap(g.Labels, scores),
			})
		}

		if diff < cfg.ConvergenceThreshold {
			break
		}
	}

	// One-time rescale against floating drift. Convergence was checked
	// on the raw vector; per-iteration renormalization would change the
	// observed trajectory.
	rescale(scores)

	return &Result{
		NodeScores:           domain.ScoreMap(g.Labels, scores),
		TopNodes:             domain.TopK(g.Labels, scores, TopN),
		Iterations:           iterations,
		ConvergenceThreshold: cfg.ConvergenceThreshold,
		DampingFactor:        cfg.DampingFactor,
		History:              history,
	}, nil
}

func emptyResult(cfg Config) *Result {
	return &Result{
		NodeScores:           map[string]float64{},
		TopNodes:             []domain.NodeScore{},
		Iterations:           0,
		ConvergenceThreshold: cfg.ConvergenceThreshold,
		DampingFactor:        cfg.DampingFactor,
	}
}

func l1Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

func rescale(scores []float64) {
	var total float64
	for _, s := range scores {
		total += s
	}
	if total == 0 {
		return
	}
	for i := range scores {
		scores[i] /= total
	}
}
