package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"github.com/gofiber/fiber/v2/utils"
)

// ListCache returns a process-wide response cache for one list endpoint.
// Key is the exact path + query string, so each search/ordering/page combo is
// cached independently. Only GET passes through the cache; writes are never
// cached and never invalidate an entry — stale reads inside the TTL are an
// accepted staleness window, not a bug.
func ListCache(ttl time.Duration) fiber.Handler {
	return cache.New(cache.Config{
		Expiration:   ttl,
		CacheControl: false,
		KeyGenerator: func(c *fiber.Ctx) string {
			return utils.CopyString(c.OriginalURL())
		},
		Next: func(c *fiber.Ctx) bool {
			return c.Method() != fiber.MethodGet
		},
	})
}
