package domain

import "context"

// WriterPort adds categories
type WriterPort interface {
	// Add inserts name if absent. created is false when the name already existed
	Add(ctx context.Context, name string) (created bool, err error)
}

// ReaderPort lists categories for dropdowns and reports
type ReaderPort interface {
	Names(ctx context.Context) ([]string, error)
	// Filter returns names containing substr, case-insensitively
	Filter(ctx context.Context, substr string) ([]string, error)
}
