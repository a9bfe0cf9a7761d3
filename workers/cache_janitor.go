package workers

import (
	"context"
	"log"
	"time"

	"github.com/CRYPTON016/pokedex/cache"
)

// PollCache evicts expired cache entries on an interval until the context is
// cancelled. The memory backend only drops stale entries lazily on read, so
// keys that stop being requested would otherwise pin their payloads forever.
func PollCache(ctx context.Context, store cache.Store, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("[CacheJanitor] started (every %s)", interval)
	for {
		select {
		case <-ctx.Done():
			log.Println("[CacheJanitor] stopped")
			return
		case <-ticker.C:
			if pruned := store.Prune(); pruned > 0 {
				log.Printf("[CacheJanitor] pruned %d expired entries", pruned)
			}
		}
	}
}
