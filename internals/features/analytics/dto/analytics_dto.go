package dto

// Shapes match what the admin dashboard charts consume, so field names here
// are camelCase where the frontend expects them.

type StatDTO struct {
	Label      string `json:"label"`
	Value      string `json:"value"`
	Change     string `json:"change"`
	IsPositive bool   `json:"isPositive"`
	Type       string `json:"type"`
}

type TrendPointDTO struct {
	Name   string `json:"name"`
	Visits int    `json:"visits"`
}

type DistributionDTO struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type AnalyticsDTO struct {
	Stats               []StatDTO         `json:"stats"`
	VisitorTrends       []TrendPointDTO   `json:"visitorTrends"`
	ContentDistribution []DistributionDTO `json:"contentDistribution"`
}
