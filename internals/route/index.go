package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	leadershiproute "newgate_backend/internals/features/about/leadership/route"
	valueroute "newgate_backend/internals/features/about/values/route"
	analyticsroute "newgate_backend/internals/features/analytics/route"
	contactroute "newgate_backend/internals/features/contact/messages/route"
	eventroute "newgate_backend/internals/features/content/events/route"
	ministryroute "newgate_backend/internals/features/content/ministries/route"
	sermonroute "newgate_backend/internals/features/content/sermons/route"
	givingroute "newgate_backend/internals/features/giving/options/route"
	churchinforoute "newgate_backend/internals/features/site/churchinfo/route"
	homefeatureroute "newgate_backend/internals/features/site/homefeatures/route"
	authroute "newgate_backend/internals/features/users/auth/route"
	livestreamroute "newgate_backend/internals/features/worship/livestream/route"
	scheduleroute "newgate_backend/internals/features/worship/schedules/route"
)

// SetupRoutes mounts every feature under /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	authroute.AuthRoutes(api, db)

	eventroute.EventRoutes(api, db)
	sermonroute.SermonRoutes(api, db)
	ministryroute.MinistryRoutes(api, db)

	livestreamroute.LiveStreamRoutes(api, db)
	scheduleroute.ServiceScheduleRoutes(api, db)

	givingroute.GivingOptionRoutes(api, db)
	valueroute.ValueRoutes(api, db)
	leadershiproute.LeadershipRoutes(api, db)

	churchinforoute.ChurchInfoRoutes(api, db)
	homefeatureroute.HomeFeatureRoutes(api, db)

	contactroute.ContactMessageRoutes(api, db)
	analyticsroute.AnalyticsRoutes(api, db)
}
