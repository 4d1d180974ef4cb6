package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/features/contact/messages/controller"
	"newgate_backend/internals/middlewares"
	"newgate_backend/internals/middlewares/policy"
)

func ContactMessageRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewContactMessageController(db)

	// Create is the public contact form; everything else is admin-only.
	g := api.Group("/contact-messages")
	g.Get("/", policy.Guard(db, "contact-messages", policy.OpList), ctrl.List)
	g.Get("/:id", policy.Guard(db, "contact-messages", policy.OpRetrieve), ctrl.GetByID)
	g.Post("/", policy.Guard(db, "contact-messages", policy.OpCreate), middlewares.ContactFormRateLimiter(), ctrl.Create)
	g.Put("/:id", policy.Guard(db, "contact-messages", policy.OpUpdate), ctrl.Update)
	g.Patch("/:id", policy.Guard(db, "contact-messages", policy.OpUpdate), ctrl.Update)
	g.Delete("/:id", policy.Guard(db, "contact-messages", policy.OpDelete), ctrl.Delete)
}
