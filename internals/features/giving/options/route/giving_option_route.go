package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/features/giving/options/controller"
	"newgate_backend/internals/middlewares/policy"
)

func GivingOptionRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGivingOptionController(db)

	g := api.Group("/giving-options")
	g.Get("/", policy.Guard(db, "giving-options", policy.OpList), ctrl.List)
	g.Get("/:id", policy.Guard(db, "giving-options", policy.OpRetrieve), ctrl.GetByID)
	g.Post("/", policy.Guard(db, "giving-options", policy.OpCreate), ctrl.Create)
	g.Put("/:id", policy.Guard(db, "giving-options", policy.OpUpdate), ctrl.Update)
	g.Patch("/:id", policy.Guard(db, "giving-options", policy.OpUpdate), ctrl.Update)
	g.Delete("/:id", policy.Guard(db, "giving-options", policy.OpDelete), ctrl.Delete)
}
