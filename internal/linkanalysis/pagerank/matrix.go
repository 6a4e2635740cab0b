package pagerank

import "github.com/netrank-labs/netrank-backend/internal/linkanalysis/domain"

// buildTransitionMatrix builds the column-stochastic matrix M' where
// column j holds 1/outdeg(j) for each out-neighbor of j (accumulated
// per edge instance, so parallel edges weigh in fully) and a uniform
// 1/n column when j has no out-edges.
func buildTransitionMatrix(g *domain.Graph) [][]float64 {
	n := g.NumNodes()
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	for j := 0; j < n; j++ {
		deg := g.OutDegree(j)
		if deg == 0 {
			for i := 0; i < n; i++ {
				m[i][j] = 1.0 / float64(n)
			}
			continue
		}
		for _, i := range g.Out[j] {
			m[i][j] += 1.0 / float64(deg)
		}
	}

	return m
}

// CalculateMatrix runs the explicit power-iteration realization
// new = d*M'*old + ((1-d)/n)*ones. It is numerically equivalent to
// Calculate; the matrix is built once per call and only the multiply
// repeats. History snapshots capture the pre-rescale vector per step.
func CalculateMatrix(g *domain.Graph, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := g.NumNodes()
	if n == 0 {
		return emptyResult(cfg), nil
	}

	d := cfg.DampingFactor
	m := buildTransitionMatrix(g)

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}

	var history []IterationSnapshot

	iterations := 0
	for iter := 0; iter < cfg.MaxIterations; iter++ {
		next := make([]float64, n)
		teleport := (1 - d) / float64(n)
		for i := 0; i < n; i++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				sum += m[i][j] * scores[j]
			}
			next[i] = d*sum + teleport
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
