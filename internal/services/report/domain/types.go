// Package domain defines the types and interfaces for the report service
package domain

// Kind selects the chart shape for a series
type Kind string

// Chart kinds rendered by the chart collaborator
const (
	KindLine Kind = "line"
	KindBar  Kind = "bar"
)

// Series is a labeled sequence of counts ready for charting
type Series struct {
	Title  string   `json:"title"`
	Labels []string `json:"labels"`
	Values []int64  `json:"values"`
}

// Overview is the reporting payload: total plus both chart URLs
type Overview struct {
	Total            int64  `json:"total"`
	WeeklyChartURL   string `json:"weekly_chart_url"`
	CategoryChartURL string `json:"category_chart_url"`
}
