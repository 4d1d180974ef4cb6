package policy

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowsAnonymous(t *testing.T) {
	publicRead := []string{"events", "sermons", "ministries", "livestream", "schedule"}
	for _, entity := range publicRead {
		assert.True(t, AllowsAnonymous(entity, OpList), entity)
		assert.True(t, AllowsAnonymous(entity, OpRetrieve), entity)
		assert.False(t, AllowsAnonymous(entity, OpCreate), entity)
		assert.False(t, AllowsAnonymous(entity, OpUpdate), entity)
		assert.False(t, AllowsAnonymous(entity, OpDelete), entity)
	}

	allAuthed := []string{"giving-options", "values", "leadership", "church-info", "home-features"}
	for _, entity := range allAuthed {
		for _, op := range []Operation{OpList, OpRetrieve, OpCreate, OpUpdate, OpDelete} {
			assert.False(t, AllowsAnonymous(entity, op), entity+"/"+string(op))
		}
	}

	// contact form: anonymous submit only
	assert.True(t, AllowsAnonymous("contact-messages", OpCreate))
	for _, op := range []Operation{OpList, OpRetrieve, OpUpdate, OpDelete} {
		assert.False(t, AllowsAnonymous("contact-messages", op))
	}
}

func TestAllowsAnonymousUnknownEntity(t *testing.T) {
	assert.False(t, AllowsAnonymous("nonexistent", OpList))
}

func TestEntitiesCoverage(t *testing.T) {
	assert.Len(t, Entities(), 11)
}

// Anonymous requests never reach the DB: public ops pass straight through and
// credentialed ops are rejected on the missing bearer token, so a nil *gorm.DB
// is safe here.
func TestGuard(t *testing.T) {
	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/events", Guard(nil, "events", OpList), ok)
	app.Post("/events", Guard(nil, "events", OpCreate), ok)
	app.Get("/values", Guard(nil, "values", OpList), ok)
	app.Post("/contact-messages", Guard(nil, "contact-messages", OpCreate), ok)

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{name: "public read passes", method: "GET", target: "/events", wantStatus: fiber.StatusOK},
		{name: "anonymous write rejected", method: "POST", target: "/events", wantStatus: fiber.StatusUnauthorized},
		{name: "protected read rejected", method: "GET", target: "/values", wantStatus: fiber.StatusUnauthorized},
		{name: "contact form open", method: "POST", target: "/contact-messages", wantStatus: fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
