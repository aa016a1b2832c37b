package domain

import "context"

// UpserterPort records incidents
type UpserterPort interface {
	// Upsert files text under category for reporter. Re-filing the same text
	// overwrites reporter and category; created_at keeps its original value
	Upsert(ctx context.Context, reporter, text, category string) error
}

// QueryPort reads incidents and their aggregations.
// A nil sinceDays means no cutoff; n means the last n whole days
type QueryPort interface {
	List(ctx context.Context, sinceDays *int) ([]Incident, error)
	Total(ctx context.Context, sinceDays *int) (int64, error)
	CountByWeek(ctx context.Context, sinceDays *int) ([]WeekCount, error)
	CountByCategory(ctx context.Context, sinceDays *int) ([]CategoryCount, error)
}
