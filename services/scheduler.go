// services/scheduler.go
package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/gofiber/fiber/v2"
)

// StartAggregateWarmer keeps the long-TTL aggregates hot: every hour it
// recomputes the type distribution and the top-10-by-total leaderboard into
// the cache, so the first analytics request after an expiry doesn't pay for
// the group-by.
func (s *StatsService) StartAggregateWarmer() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	warm := func() {
		distribution, err := s.Distribution()
		if err != nil {
			log.Printf("[Warmer] distribution failed: %v", err)
		} else if raw, err := json.Marshal(fiber.Map{"typeDistribution": distribution}); err == nil {
			s.Cache.Set("pokemon:stats:distribution", raw, statsCacheTTL)
		}

		top, err := s.TopByStat("total", 10)
		if err != nil {
			log.Printf("[Warmer] top-by-total failed: %v", err)
		} else if raw, err := json.Marshal(top); err == nil {
			s.Cache.Set("pokemon:top:total:limit=10", raw, topCacheTTL)
		}
	}

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(warm),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
}
