package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/features/about/values/controller"
	"newgate_backend/internals/middlewares/policy"
)

func ValueRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewValueController(db)

	g := api.Group("/values")
	g.Get("/", policy.Guard(db, "values", policy.OpList), ctrl.List)
	g.Get("/:id", policy.Guard(db, "values", policy.OpRetrieve), ctrl.GetByID)
	g.Post("/", policy.Guard(db, "values", policy.OpCreate), ctrl.Create)
	g.Put("/:id", policy.Guard(db, "values", policy.OpUpdate), ctrl.Update)
	g.Patch("/:id", policy.Guard(db, "values", policy.OpUpdate), ctrl.Update)
	g.Delete("/:id", policy.Guard(db, "values", policy.OpDelete), ctrl.Delete)
}
