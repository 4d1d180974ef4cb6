package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"newgate_backend/internals/configs"
)

// MediaURL rewrites a stored relative media path ("events/pic.jpg") to an
// absolute URL under /media/ using the inbound request origin. Without a
// request the configured fallback origin is used. Already-absolute URLs pass
// through untouched; empty paths stay nil so JSON renders null.
func MediaURL(c *fiber.Ctx, path string) *string {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return &path
	}

	origin := configs.PublicBaseURL
	if c != nil {
		if base := c.BaseURL(); base != "" {
			origin = base
		}
	}
	u := strings.TrimSuffix(origin, "/") + "/media/" + strings.TrimPrefix(path, "/")
	return &u
}
