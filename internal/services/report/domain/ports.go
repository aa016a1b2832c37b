package domain

import "context"

// QueryPort serves the aggregation surface
type QueryPort interface {
	WeeklySeries(ctx context.Context, sinceDays *int) (Series, error)
	CategorySeries(ctx context.Context, sinceDays *int) (Series, error)
	Overview(ctx context.Context, sinceDays *int) (Overview, error)
}

// ChartRenderer turns a series into an image URL. Rendering happens outside
// the process; the URL is opaque to the core
type ChartRenderer interface {
	Render(ctx context.Context, s Series, kind Kind) (string, error)
}
