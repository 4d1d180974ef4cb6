package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/configs"
	"newgate_backend/internals/features/content/ministries/controller"
	"newgate_backend/internals/middlewares"
	"newgate_backend/internals/middlewares/policy"
)

func MinistryRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMinistryController(db)

	g := api.Group("/ministries")
	g.Get("/", policy.Guard(db, "ministries", policy.OpList), middlewares.ListCache(configs.CacheTTLMinistries), ctrl.List)
	g.Get("/:id", policy.Guard(db, "ministries", policy.OpRetrieve), ctrl.GetByID)
	g.Post("/", policy.Guard(db, "ministries", policy.OpCreate), ctrl.Create)
	g.Put("/:id", policy.Guard(db, "ministries", policy.OpUpdate), ctrl.Update)
	g.Patch("/:id", policy.Guard(db, "ministries", policy.OpUpdate), ctrl.Update)
	g.Delete("/:id", policy.Guard(db, "ministries", policy.OpDelete), ctrl.Delete)
}
