package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/configs"
	"newgate_backend/internals/features/content/sermons/controller"
	"newgate_backend/internals/middlewares"
	"newgate_backend/internals/middlewares/policy"
)

func SermonRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSermonController(db)

	g := api.Group("/sermons")
	g.Get("/", policy.Guard(db, "sermons", policy.OpList), middlewares.ListCache(configs.CacheTTLSermons), ctrl.List)
	g.Get("/:id", policy.Guard(db, "sermons", policy.OpRetrieve), ctrl.GetByID)
	g.Post("/", policy.Guard(db, "sermons", policy.OpCreate), ctrl.Create)
	g.Put("/:id", policy.Guard(db, "sermons", policy.OpUpdate), ctrl.Update)
	g.Patch("/:id", policy.Guard(db, "sermons", policy.OpUpdate), ctrl.Update)
	g.Delete("/:id", policy.Guard(db, "sermons", policy.OpDelete), ctrl.Delete)
}
