package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newgate_backend/internals/features/analytics/controller"
)

func AnalyticsRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnalyticsController(db)
	api.Get("/analytics", ctrl.Get)
}
