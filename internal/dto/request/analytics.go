package request

type DailyCountsQuery struct {
	Month int `validate:"min=1,max=12"`
	Year  int `validate:"min=1970,max=9999"`
}

type HighRiskQuery struct {
	Search   string
	Priority string `validate:"omitempty,oneof=urgent high medium"`
	Category string
}
