package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/configs"
	"newgate_backend/internals/features/site/churchinfo/controller"
	"newgate_backend/internals/middlewares"
	"newgate_backend/internals/middlewares/policy"
)

func ChurchInfoRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewChurchInfoController(db)

	g := api.Group("/church-info")
	g.Get("/", policy.Guard(db, "church-info", policy.OpList), middlewares.ListCache(configs.CacheTTLChurchInfo), ctrl.List)
	g.Get("/:id", policy.Guard(db, "church-info", policy.OpRetrieve), ctrl.GetByID)
	g.Post("/", policy.Guard(db, "church-info", policy.OpCreate), ctrl.Create)
	g.Put("/:id", policy.Guard(db, "church-info", policy.OpUpdate), ctrl.Update)
	g.Patch("/:id", policy.Guard(db, "church-info", policy.OpUpdate), ctrl.Update)
	g.Delete("/:id", policy.Guard(db, "church-info", policy.OpDelete), ctrl.Delete)
}
