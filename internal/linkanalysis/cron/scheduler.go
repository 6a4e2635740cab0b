package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/hits"
	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/pagerank"
	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/service"
	netrepo "github.com/netrank-labs/netrank-backend/internal/networks/repository"
)

// Scheduler precomputes default-parameter rankings for every catalogued
// network on a cron schedule, keeping the result cache warm so regular
// requests hit precomputed entries.
type Scheduler struct {
	analysis *service.AnalysisService
	store    *netrepo.Store
	prCfg    pagerank.Config
	hitsCfg  hits.Config
}

func NewScheduler(analysis *service.AnalysisService, store *netrepo.Store, prCfg pagerank.Config, hitsCfg hits.Config) *Scheduler {
	return &Scheduler{
		analysis: analysis,
		store:    store,
		prCfg:    prCfg,
		hitsCfg:  hitsCfg,
	}
}

// Start initializes the cron task with the given spec (seconds field
// included, e.g. "0 0 3 * * *" for 3:00 AM daily).
func (s *Scheduler) Start(spec string) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(spec, func() {
		s.WarmCache()
	})
	if err != nil {
		log.Printf("Failed to create cache warm cron job: %v", err)
		return
	}

	log.Printf("Cache warm scheduler started (spec %q)", spec)
	c.Start()
}

// WarmCache runs both engines and the comparison for every network with
// the default parameters. Failures are logged and skipped; the next
// scheduled run retries.
func (s *Scheduler) WarmCache() {
	log.Println("Cache warm job started...")
	start := time.Now()
	ctx := context.Background()

	for _, network := range s.store.List() {
		if _, err := s.analysis.RunPageRank(ctx, network, s.prCfg, service.MethodAdjacency); err != nil {
			log.Printf("Warm pagerank for %q failed: %v", network.Type, err)
		}
		if _, err := s.analysis.RunHITS(ctx, network, s.hitsCfg); err != nil {
			log.Printf("Warm hits for %q failed: %v", network.Type, err)
		}
		if _, err := s.analysis.Compare(ctx, network, s.prCfg, s.hitsCfg); err != nil {
			log.Printf("Warm compare for %q failed: %v", network.Type, err)
		}
	}

	log.Printf("Cache warm job completed in %s", time.Since(start))
}
