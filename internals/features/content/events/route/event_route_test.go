package route

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Writes are rejected on the missing credential before any handler or query
// runs, so the routes can be mounted against a nil DB here.
func TestEventWriteRoutesRequireAuth(t *testing.T) {
	app := fiber.New()
	api := app.Group("/api")
	EventRoutes(api, nil)

	tests := []struct {
		method string
		target string
	}{
		{method: "POST", target: "/api/events/"},
		{method: "PUT", target: "/api/events/123"},
		{method: "PATCH", target: "/api/events/123"},
		{method: "DELETE", target: "/api/events/123"},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestEventWriteRejectsMalformedAuthHeader(t *testing.T) {
	app := fiber.New()
	api := app.Group("/api")
	EventRoutes(api, nil)

	req := httptest.NewRequest("POST", "/api/events/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token abc123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
