package response

import "phi-inspection/internal/analytics"

type DailyCountsResponse struct {
	Month  int   `json:"month"`
	Year   int   `json:"year"`
	Counts []int `json:"counts"`
}

type CategorySummaryResponse struct {
	Categories []analytics.CategoryStat `json:"categories"`
}

type HighRiskResponse struct {
	Count       int                       `json:"count"`
	Inspections []analytics.HighRiskEntry `json:"inspections"`
}
