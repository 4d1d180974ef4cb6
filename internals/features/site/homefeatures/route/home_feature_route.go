package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/configs"
	"newgate_backend/internals/features/site/homefeatures/controller"
	"newgate_backend/internals/middlewares"
	"newgate_backend/internals/middlewares/policy"
)

func HomeFeatureRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHomeFeatureController(db)

	g := api.Group("/home-features")
	g.Get("/", policy.Guard(db, "home-features", policy.OpList), middlewares.ListCache(configs.CacheTTLHomeFeature), ctrl.List)
	g.Get("/:id", policy.Guard(db, "home-features", policy.OpRetrieve), ctrl.GetByID)
	g.Post("/", policy.Guard(db, "home-features", policy.OpCreate), ctrl.Create)
	g.Put("/:id", policy.Guard(db, "home-features", policy.OpUpdate), ctrl.Update)
	g.Patch("/:id", policy.Guard(db, "home-features", policy.OpUpdate), ctrl.Update)
	g.Delete("/:id", policy.Guard(db, "home-features", policy.OpDelete), ctrl.Delete)
}
