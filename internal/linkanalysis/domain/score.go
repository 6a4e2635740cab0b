package domain

import "sort"

// NodeScore pairs a node label with a score, used for top-k rankings.
type NodeScore struct {
	Node  string  `json:"node"`
	Score float64 `json:"score"`
}

// TopK ranks the score vector descending and returns the first k
// entries as (label, score) pairs. The sort is stable so ties keep the
// label insertion order. k larger than the node count is clamped.
func TopK(labels []string, scores []float64, k int) []NodeScore {
	ranked := make([]NodeScore, len(labels))
	for i, label := range labels {
		ranked[i] = NodeScore{Node: label, Score: scores[i]}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k]
}

// ScoreMap converts a dense score vector into a label-keyed map.
func ScoreMap(labels []string, scores []float64) map[string]float64 {
	m := make(map[string]float64, len(labels))
	for i, label := range labels {
		m[label] = scores[i]
	}
	return m
}
