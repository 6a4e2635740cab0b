package service

import (
	"context"
	"log"

	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/domain"
	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/hits"
	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/pagerank"
	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/repository"
	netdomain "github.com/netrank-labs/netrank-backend/internal/networks/domain"
)

// PageRankMethod selects the engine realization.
type PageRankMethod string

const (
	// MethodAdjacency accumulates contributions per adjacency list.
	MethodAdjacency PageRankMethod = "adjacency"
	// MethodMatrix multiplies the explicit column-stochastic matrix.
	MethodMatrix PageRankMethod = "matrix"
)

// ComparisonResult combines both engines' outputs with their rank
// overlaps and derived insight strings.
type ComparisonResult struct {
	PageRank           *pagerank.Result `json:"pagerank"`
	HITS               *hits.Result     `json:"hits"`
	OverlapAuthorities []string         `json:"overlap_authorities"`
	OverlapHubs        []string         `json:"overlap_hubs"`
	Insights           []string         `json:"insights"`
}

// AnalysisService runs the ranking engines over resolved networks.
// Every graph index and score vector is allocated fresh per call; the
// optional cache only deduplicates identical deterministic requests.
type AnalysisService struct {
	cache *repository.ResultCache
}

// NewAnalysisService creates the service. cache may be nil.
func NewAnalysisService(cache *repository.ResultCache) *AnalysisService {
	return &AnalysisService{cache: cache}
}

// RunPageRank computes PageRank for the network with the given config.
// History requests and the matrix realization bypass the cache.
func (s *AnalysisService) RunPageRank(ctx context.Context, network *netdomain.Network, cfg pagerank.Config, method PageRankMethod) (*pagerank.Result, error) {
	cacheable := !cfg.IncludeHistory && method != MethodMatrix
	key := repository.PageRankKey(network.Type, cfg.DampingFactor, cfg.MaxIterations, cfg.ConvergenceThreshold)

	if cacheable {
		var cached pagerank.Result
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Printf("[rank] pagerank cache read failed: %v", err)
		} else if hit {
			return &cached, nil
		}
	}

	g := domain.NewGraph(network.Nodes, network.Edges)

	var (
		result *pagerank.Result
		err    error
	)
	if method == MethodMatrix {
		result, err = pagerank.CalculateMatrix(g, cfg)
	} else {
		result, err = pagerank.Calculate(g, cfg)
	}
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := s.cache.Set(ctx, key, result); err != nil {
			log.Printf("[rank] pagerank cache write failed: %v", err)
		}
	}
	return result, nil
}

// RunHITS computes HITS for the network with the given config.
func (s *AnalysisService) RunHITS(ctx context.Context, network *netdomain.Network, cfg hits.Config) (*hits.Result, error) {
	cacheable := !cfg.IncludeHistory
	key := repository.HITSKey(network.Type, cfg.MaxIterations, cfg.ConvergenceThreshold)

	if cacheable {
		var cached hits.Result
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Printf("[rank] hits cache read failed: %v", err)
		} else if hit {
			return &cached, nil
		}
	}

	g := domain.NewGraph(network.Nodes, network.Edges)
	result, err := hits.Calculate(g, cfg)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := s.cache.Set(ctx, key, result); err != nil {
			log.Printf("[rank] hits cache write failed: %v", err)
		}
	}
	return result, nil
}

// Compare runs both engines over the identical graph and derives the
// rank overlaps and insight strings. HITS ignores the damping factor.
func (s *AnalysisService) Compare(ctx context.Context, network *netdomain.Network, prCfg pagerank.Config, hitsCfg hits.Config) (*ComparisonResult, error) {
	key := repository.CompareKey(network.Type, prCfg.DampingFactor, prCfg.MaxIterations, prCfg.ConvergenceThreshold)
	cacheable := !prCfg.IncludeHistory && !hitsCfg.IncludeHistory

	if cacheable {
		var cached ComparisonResult
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Printf("[rank] compare cache read failed: %v", err)
		} else if hit {
			return &cached, nil
		}
	}

	g := domain.NewGraph(network.Nodes, network.Edges)

	prResult, err := pagerank.Calculate(g, prCfg)
	if err != nil {
		return nil, err
	}
	hitsResult, err := hits.Calculate(g, hitsCfg)
	if err != nil {
		return nil, err
	}

	overlapAuth := intersectTop(prResult.TopNodes, hitsResult.TopAuthorities)
	overlapHubs := intersectTop(prResult.TopNodes, hitsResult.TopHubs)

	result := &ComparisonResult{
		PageRank:           prResult,
		HITS:               hitsResult,
		OverlapAuthorities: overlapAuth,
		OverlapHubs:        overlapHubs,
		Insights:           buildInsights(g, network.Type, prResult, hitsResult, overlapAuth, overlapHubs),
	}

	if cacheable {
		if err := s.cache.Set(ctx, key, result); err != nil {
			log.Printf("[rank] compare cache write failed: %v", err)
		}
	}
	return result, nil
}

// intersectTop returns the labels present in both top lists, ordered by
// their position in the first list.
func intersectTop(a, b []domain.NodeScore) []string {
	inB := make(map[string]struct{}, len(b))
	for _, ns := range b {
		inB[ns.Node] = struct{}{}
	}

	overlap := []string{}
	for _, ns := range a {
		if _, ok := inB[ns.Node]; ok {
			overlap = append(overlap, ns.Node)
		}
	}
	return overlap
}
