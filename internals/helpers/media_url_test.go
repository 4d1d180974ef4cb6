package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newgate_backend/internals/configs"
)

func mediaURLFor(t *testing.T, path string) *string {
	t.Helper()
	var got *string
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		got = MediaURL(c, path)
		return c.SendStatus(fiber.StatusOK)
	})
	req := httptest.NewRequest("GET", "http://chapel.test/x", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestMediaURLWithRequest(t *testing.T) {
	tests := []struct {
		name string
		path string
		want *string
	}{
		{name: "relative path", path: "events/pic.jpg", want: strPtr("http://chapel.test/media/events/pic.jpg")},
		{name: "leading slash stripped", path: "/events/pic.jpg", want: strPtr("http://chapel.test/media/events/pic.jpg")},
		{name: "absolute http passes through", path: "http://cdn.example.com/a.png", want: strPtr("http://cdn.example.com/a.png")},
		{name: "absolute https passes through", path: "https://cdn.example.com/a.png", want: strPtr("https://cdn.example.com/a.png")},
		{name: "empty stays nil", path: "", want: nil},
		{name: "whitespace stays nil", path: "   ", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mediaURLFor(t, tt.path))
		})
	}
}

func TestMediaURLWithoutRequest(t *testing.T) {
	prev := configs.PublicBaseURL
	configs.PublicBaseURL = "http://localhost:8000"
	t.Cleanup(func() { configs.PublicBaseURL = prev })

	got := MediaURL(nil, "sermons/cover.jpg")
	require.NotNil(t, got)
	assert.Equal(t, "http://localhost:8000/media/sermons/cover.jpg", *got)

	assert.Nil(t, MediaURL(nil, ""))
}

func strPtr(s string) *string { return &s }
