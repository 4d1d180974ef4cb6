package controller

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	leadershipmodel "newgate_backend/internals/features/about/leadership/model"
	"newgate_backend/internals/features/analytics/dto"
	contactmodel "newgate_backend/internals/features/contact/messages/model"
	eventmodel "newgate_backend/internals/features/content/events/model"
	ministrymodel "newgate_backend/internals/features/content/ministries/model"
	sermonmodel "newgate_backend/internals/features/content/sermons/model"
	helper "newgate_backend/internals/helpers"
)

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

// VisitorTrends fabricates the six-month visit series shown on the dashboard.
// The numbers are placeholder demo data, not real traffic; only the month
// labels are derived from the clock. Kept as a pure function of its inputs.
func VisitorTrends(now time.Time, r *rand.Rand) []dto.TrendPointDTO {
	out := make([]dto.TrendPointDTO, 0, 6)
	for i := 5; i >= 0; i-- {
		month := now.AddDate(0, 0, -i*30)
		out = append(out, dto.TrendPointDTO{
			Name:   month.Format("Jan"),
			Visits: 1500 + r.Intn(1501), // 1500..3000
		})
	}
	return out
}

// =============================
// 📊 Dashboard Analytics
// =============================
// Raw object (no success/message envelope); the dashboard consumes it as-is.
func (ctrl *AnalyticsController) Get(c *fiber.Ctx) error {
	var (
		totalEvents     int64
		totalSermons    int64
		totalMinistries int64
		totalLeadership int64
		totalInquiries  int64
		unreadInquiries int64
	)

	counts := []struct {
		model any
		dest  *int64
	}{
		{&eventmodel.EventModel{}, &totalEvents},
		{&sermonmodel.SermonModel{}, &totalSermons},
		{&ministrymodel.MinistryModel{}, &totalMinistries},
		{&leadershipmodel.LeadershipModel{}, &totalLeadership},
		{&contactmodel.ContactMessageModel{}, &totalInquiries},
	}
	for _, cnt := range counts {
		if err := ctrl.DB.Model(cnt.model).Count(cnt.dest).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute analytics")
		}
	}
	if err := ctrl.DB.Model(&contactmodel.ContactMessageModel{}).
		Where("is_read = ?", false).
		Count(&unreadInquiries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute analytics")
	}

	payload := dto.AnalyticsDTO{
		Stats: []dto.StatDTO{
			{Label: "Total Events", Value: fmt.Sprintf("%d", totalEvents), Change: "+2%", IsPositive: true, Type: "event"},
			{Label: "Total Sermons", Value: fmt.Sprintf("%d", totalSermons), Change: "+5%", IsPositive: true, Type: "sermon"},
			{Label: "Ministries", Value: fmt.Sprintf("%d", totalMinistries), Change: "0%", IsPositive: true, Type: "ministry"},
			{Label: "New Inquiries", Value: fmt.Sprintf("%d", unreadInquiries), Change: fmt.Sprintf("/%d total", totalInquiries), IsPositive: unreadInquiries > 0, Type: "message"},
		},
		VisitorTrends: VisitorTrends(time.Now(), rand.New(rand.NewSource(time.Now().UnixNano()))),
		ContentDistribution: []dto.DistributionDTO{
			{Name: "Events", Value: totalEvents},
			{Name: "Sermons", Value: totalSermons},
			{Name: "Ministries", Value: totalMinistries},
			{Name: "Inquiries", Value: totalInquiries},
		},
	}
	return c.JSON(payload)
}
