package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/configs"
	"newgate_backend/internals/features/worship/schedules/controller"
	"newgate_backend/internals/middlewares"
	"newgate_backend/internals/middlewares/policy"
)

func ServiceScheduleRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewServiceScheduleController(db)

	g := api.Group("/schedule")
	g.Get("/", policy.Guard(db, "schedule", policy.OpList), middlewares.ListCache(configs.CacheTTLSchedules), ctrl.List)
	g.Get("/:id", policy.Guard(db, "schedule", policy.OpRetrieve), ctrl.GetByID)
	g.Post("/", policy.Guard(db, "schedule", policy.OpCreate), ctrl.Create)
	g.Put("/:id", policy.Guard(db, "schedule", policy.OpUpdate), ctrl.Update)
	g.Patch("/:id", policy.Guard(db, "schedule", policy.OpUpdate), ctrl.Update)
	g.Delete("/:id", policy.Guard(db, "schedule", policy.OpDelete), ctrl.Delete)
}
