package service

import (
	"fmt"
	"strings"

	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/domain"
	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/hits"
	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/pagerank"
	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/stats"
)

// buildInsights derives the human-readable comparison commentary from
// the overlaps, the top node of each ranking and its degrees, both
// convergence counts, and the graph-level average degree.
func buildInsights(g *domain.Graph, networkType string, pr *pagerank.Result, h *hits.Result, overlapAuth, overlapHubs []string) []string {
	var insights []string

	if len(overlapAuth) > 0 {
		insights = append(insights, fmt.Sprintf(
			"%d node(s) appear in both top PageRank and top Authorities: %s",
			len(overlapAuth), strings.Join(overlapAuth, ", ")))
	} else {
		insights = append(insights, "No overlap between top PageRank nodes and top Authorities")
	}

	if len(overlapHubs) > 0 {
		insights = append(insights, fmt.Sprintf(
			"%d node(s) appear in both top PageRank and top Hubs: %s",
			len(overlapHubs), strings.Join(overlapHubs, ", ")))
	} else {
		insights = append(insights, "No overlap between top PageRank nodes and top Hubs")
	}

	degrees := stats.NodeDegrees(g)
	if top, ok := topOf(pr.TopNodes); ok {
		d := degrees[top]
		insights = append(insights, fmt.Sprintf(
			"Top PageRank node %s has in-degree %d and out-degree %d", top, d.InDegree, d.OutDegree))
	}
	if top, ok := topOf(h.TopAuthorities); ok {
		d := degrees[top]
		insights = append(insights, fmt.Sprintf(
			"Top authority %s has in-degree %d and out-degree %d", top, d.InDegree, d.OutDegree))
	}
	if top, ok := topOf(h.TopHubs); ok {
		d := degrees[top]
		insights = append(insights, fmt.Sprintf(
			"Top hub %s has in-degree %d and out-degree %d", top, d.InDegree, d.OutDegree))
	}

	insights = append(insights, fmt.Sprintf(
		"PageRank converged in %d iteration(s), HITS in %d", pr.Iterations, h.Iterations))

	if s := stats.Statistics(g); s.NumNodes > 0 {
		insights = append(insights, fmt.Sprintf(
			"Average degree across the network is %.2f", s.AvgDegree))
	}

	switch networkType {
	case "citation":
		insights = append(insights,
			"In citation networks, high PageRank typically indicates influential papers",
			"High authority scores indicate papers that are frequently cited",
			"High hub scores indicate papers that cite many important papers")
	case "social":
		insights = append(insights,
			"In social networks, high PageRank indicates influential users",
			"High authority scores indicate users who are mentioned/retweeted often",
			"High hub scores indicate users who frequently mention/retweet others")
	}

	return insights
}

// topOf guards against empty top lists on degenerate graphs.
func topOf(top []domain.NodeScore) (string, bool) {
	if len(top) == 0 {
		return "", false
	}
	return top[0].Node, true
}
