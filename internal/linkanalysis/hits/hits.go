// Package hits implements Hyperlink-Induced Topic Search: a node is a
// good authority when cited by good hubs and a good hub when it cites
// good authorities. Both vectors are iterated as a synchronous fixed
// point with L2 normalization each pass.
package hits

import (
	"math"

	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/domain"
)

const (
	DefaultMaxIterations        = 100
	DefaultConvergenceThreshold = 0.0001

	// TopN is the size of the ranked heads on every result.
	TopN = 5
)

// Config controls a single HITS computation. There is no damping
// factor; HITS has no teleportation term.
type Config struct {
	MaxIterations        int
	ConvergenceThreshold float64

	// IncludeHistory records both normalized vectors per iteration.
	IncludeHistory bool
}

// DefaultConfig returns the standard 100 / 1e-4 configuration.
func DefaultConfig() Config {
	return Config{
		MaxIterations:        DefaultMaxIterations,
		ConvergenceThreshold: DefaultConvergenceThreshold,
	}
}

// Validate checks the configured parameters.
func (c Config) Validate() error {
	if c.MaxIterations <= 0 {
		return domain.ErrInvalidMaxIterations
	}
	if c.ConvergenceThreshold <= 0 {
		return domain.ErrInvalidThreshold
	}
	return nil
}

// IterationSnapshot holds both score vectors after one iteration.
type IterationSnapshot struct {
	Iteration       int                `json:"iteration"`
	AuthorityScores map[string]float64 `json:"authority_scores"`
	HubScores       map[string]float64 `json:"hub_scores"`
}

// Result is the immutable outcome of one HITS computation.
type Result struct {
	AuthorityScores map[string]float64  `json:"authority_scores"`
	HubScores       map[string]float64  `json:"hub_scores"`
	TopAuthorities  []domain.NodeScore  `json:"top_authorities"`
	TopHubs         []domain.NodeScore  `json:"top_hubs"`
	Iterations      int                 `json:"iterations"`
	History         []IterationSnapshot `json:"history,omitempty"`
}

// Calculate iterates the authority/hub fixed point on g until the L1
// deltas of BOTH vectors fall below the threshold or the cap is hit.
//
// Each pass reads only the previous iteration's frozen vectors: the
// hub update uses the old authority vector, not the authority values
// just computed, which keeps the mutual recursion well-defined.
func Calculate(g *domain.Graph, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := g.NumNodes()
	if n == 0 {
		return &Result{
			AuthorityScores: map[string]float64{},
			HubScores:       map[string]float64{},
			TopAuthorities:  []domain.NodeScore{},
			TopHubs:         []domain.NodeScore{},
		}, nil
	}

	authority := make([]float64, n)
	hub := make([]float64, n)
	for i := 0; i < n; i++ {
		authority[i] = 1.0
		hub[i] = 1.0
	}

	var history []IterationSnapshot

	iterations := 0
	for iter := 0; iter < cfg.MaxIterations; iter++ {
		newAuthority := make([]float64, n)
		newHub := make([]float64, n)

		for i := 0; i < n; i++ {
			for _, j := range g.In[i] {
				newAuthority[i] += hub[j]
			}
		}
		for i := 0; i < n; i++ {
			for _, j := range g.Out[i] {
				newHub[i] += authority[j]
			}
		}

		// Zero-norm vectors stay all-zero rather than dividing.
		normalizeL2(newAuthority)
		normalizeL2(newHub)

		authDiff := l1Distance(newAuthority, authority)
		hubDiff := l1Distance(newHub, hub)

		authority = newAuthority
		hub = newHub
		iterations = iter + 1

		if cfg.IncludeHistory {
			history = append(history, IterationSnapshot{
				Iteration:       iterations,
				AuthorityScores: domain.ScoreMap(g.Labels, authority),
				HubScores:       domain.ScoreMap(g.Labels, hub),
			})
		}

		if authDiff < cfg.ConvergenceThreshold && hubDiff < cfg.ConvergenceThreshold {
			break
		}
	}

	return &Result{
		AuthorityScores: domain.ScoreMap(g.Labels, authority),
		HubScores:       domain.ScoreMap(g.Labels, hub),
		TopAuthorities:  domain.TopK(g.Labels, authority, TopN),
		TopHubs:         domain.TopK(g.Labels, hub, TopN),
		Iterations:      iterations,
		History:         history,
	}, nil
}

func normalizeL2(v []float64) {
	var sumSquares float64
	for _, x := range v {
		sumSquares += x * x
	}
	norm := math.Sqrt(sumSquares)
	if norm == 0 {
		return
	}
	for i := range v {
		v[i] /= norm
	}
}

func l1Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}
