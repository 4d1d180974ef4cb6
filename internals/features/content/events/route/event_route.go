package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/configs"
	"newgate_backend/internals/features/content/events/controller"
	"newgate_backend/internals/middlewares"
	"newgate_backend/internals/middlewares/policy"
)

func EventRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db)

	g := api.Group("/events")
	g.Get("/", policy.Guard(db, "events", policy.OpList), middlewares.ListCache(configs.CacheTTLEvents), ctrl.List)
	g.Get("/:id", policy.Guard(db, "events", policy.OpRetrieve), ctrl.GetByID)
	g.Post("/", policy.Guard(db, "events", policy.OpCreate), ctrl.Create)
	g.Put("/:id", policy.Guard(db, "events", policy.OpUpdate), ctrl.Update)
	g.Patch("/:id", policy.Guard(db, "events", policy.OpUpdate), ctrl.Update)
	g.Delete("/:id", policy.Guard(db, "events", policy.OpDelete), ctrl.Delete)
}
