// Package service provides the report service implementation
package service

import (
	"context"

	incdom "incstats/internal/services/incidents/domain"
	"incstats/internal/services/report/domain"
)

// Titles shown on the rendered charts
const (
	weeklyTitle   = "Incidents by week"
	categoryTitle = "Incidents by category"
)

// Service implements domain.QueryPort on top of the incidents query port
type Service struct {
	incidents incdom.QueryPort
	charts    domain.ChartRenderer
}

// New constructs a new report service
func New(incidents incdom.QueryPort, charts domain.ChartRenderer) *Service {
	return &Service{incidents: incidents, charts: charts}
}

// WeeklySeries implements domain.QueryPort. Labels are the week start dates
// in YYYY-MM-DD, ascending; an empty store yields an empty series
func (s *Service) WeeklySeries(ctx context.Context, sinceDays *int) (domain.Series, error) {
	weeks, err := s.incidents.CountByWeek(ctx, sinceDays)
	if err != nil {
		return domain.Series{}, err
	}
	out := domain.Series{
		Title:  weeklyTitle,
		Labels: make([]string, 0, len(weeks)),
		Values: make([]int64, 0, len(weeks)),
	}
	for _, w := range weeks {
		out.Labels = append(out.Labels, w.WeekStart.Format("2006-01-02"))
		out.Values = append(out.Values, w.Count)
	}
	return out, nil
}

// CategorySeries implements domain.QueryPort. Count descending, name
// ascending on ties (ordering comes from the store)
func (s *Service) CategorySeries(ctx context.Context, sinceDays *int) (domain.Series, error) {
	cats, err := s.incidents.CountByCategory(ctx, sinceDays)
	if err != nil {
		return domain.Series{}, err
	}
	out := domain.Series{
		Title:  categoryTitle,
		Labels: make([]string, 0, len(cats)),
		Values: make([]int64, 0, len(cats)),
	}
	for _, c := range cats {
		out.Labels = append(out.Labels, c.Category)
		out.Values = append(out.Values, c.Count)
	}
	return out, nil
}

// Overview implements domain.QueryPort: the total and both chart URLs for
// the reporting command
func (s *Service) Overview(ctx context.Context, sinceDays *int) (domain.Overview, error) {
	total, err := s.incidents.Total(ctx, sinceDays)
	if err != nil {
		return domain.Overview{}, err
	}

	weekly, err := s.WeeklySeries(ctx, sinceDays)
	if err != nil {
		return domain.Overview{}, err
	}
	weeklyURL, err := s.charts.Render(ctx, weekly, domain.KindLine)
	if err != nil {
		return domain.Overview{}, err
	}

	byCat, err := s.CategorySeries(ctx, sinceDays)
	if err != nil {
		return domain.Overview{}, err
	}
	catURL, err := s.charts.Render(ctx, byCat, domain.KindBar)
	if err != nil {
		return domain.Overview{}, err
	}

	return domain.Overview{
		Total:            total,
		WeeklyChartURL:   weeklyURL,
		CategoryChartURL: catURL,
	}, nil
}
