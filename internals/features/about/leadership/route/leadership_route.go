package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/features/about/leadership/controller"
	"newgate_backend/internals/middlewares/policy"
)

func LeadershipRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLeadershipController(db)

	g := api.Group("/leadership")
	g.Get("/", policy.Guard(db, "leadership", policy.OpList), ctrl.List)
	g.Get("/:id", policy.Guard(db, "leadership", policy.OpRetrieve), ctrl.GetByID)
	g.Post("/", policy.Guard(db, "leadership", policy.OpCreate), ctrl.Create)
	g.Put("/:id", policy.Guard(db, "leadership", policy.OpUpdate), ctrl.Update)
	g.Patch("/:id", policy.Guard(db, "leadership", policy.OpUpdate), ctrl.Update)
	g.Delete("/:id", policy.Guard(db, "leadership", policy.OpDelete), ctrl.Delete)
}
