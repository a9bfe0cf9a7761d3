// middleware/cachecontrol.go
package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// CacheControl stamps successful responses with a public caching policy and
// error responses with no-store, so intermediaries never pin a 4xx/5xx body.
func CacheControl(maxAge, staleWhileRevalidate int) fiber.Handler {
	value := fmt.Sprintf("public, max-age=%d", maxAge)
	if staleWhileRevalidate > 0 {
		value += fmt.Sprintf(", stale-while-revalidate=%d", staleWhileRevalidate)
	}

	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err != nil || c.Response().StatusCode() >= fiber.StatusBadRequest {
			c.Set(fiber.HeaderCacheControl, "no-store")
			return err
		}
		c.Set(fiber.HeaderCacheControl, value)
		return nil
	}
}
