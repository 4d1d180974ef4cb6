package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/features/worship/livestream/controller"
	"newgate_backend/internals/middlewares/policy"
)

func LiveStreamRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLiveStreamController(db)

	// Uncached: the Live page polls this for real-time status.
	g := api.Group("/livestream")
	g.Get("/", policy.Guard(db, "livestream", policy.OpList), ctrl.List)
	g.Get("/:id", policy.Guard(db, "livestream", policy.OpRetrieve), ctrl.GetByID)
	g.Post("/", policy.Guard(db, "livestream", policy.OpCreate), ctrl.Create)
	g.Put("/:id", policy.Guard(db, "livestream", policy.OpUpdate), ctrl.Update)
	g.Patch("/:id", policy.Guard(db, "livestream", policy.OpUpdate), ctrl.Update)
	g.Delete("/:id", policy.Guard(db, "livestream", policy.OpDelete), ctrl.Delete)
}
