// Package repo provides the incidents repository implementation.
package repo

import (
	"context"
	"strings"
	"time"

	"incstats/internal/modkit/repokit"
	"incstats/internal/services/incidents/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the incidents repository. A nil cutoff means no time filter
type Storage interface {
	Upsert(ctx context.Context, reporter, text, category string) error
	List(ctx context.Context, cutoff *time.Time) ([]domain.Incident, error)
	Total(ctx context.Context, cutoff *time.Time) (int64, error)
	CountByWeek(ctx context.Context, cutoff *time.Time) ([]domain.WeekCount, error)
	CountByCategory(ctx context.Context, cutoff *time.Time) ([]domain.CategoryCount, error)
}

// Upsert implements Storage. One conditional write: the unique constraint on
// text decides insert vs update, so concurrent reports of the same text can
// never produce two rows. created_at is deliberately not in the SET list
func (s *pg) Upsert(ctx context.Context, reporter, text, category string) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO incidents (reporter, text, category)
		VALUES ($1, $2, $3)
		ON CONFLICT (text) DO UPDATE
		SET reporter = EXCLUDED.reporter,
		    category = EXCLUDED.category
	`, reporter, text, category)
	return err
}

// List implements Storage
func (s *pg) List(ctx context.Context, cutoff *time.Time) ([]domain.Incident, error) {
	var sb strings.Builder
	var args []any

	sb.WriteString(`SELECT id, reporter, text, category, created_at FROM incidents`)
	if cutoff != nil {
		args = append(args, *cutoff)
		sb.WriteString(` WHERE created_at >= $1`)
	}
	sb.WriteString(` ORDER BY created_at ASC, id ASC`)

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Incident
	for rows.Next() {
		var in domain.Incident
		if err := rows.Scan(&in.ID, &in.Reporter, &in.Text, &in.Category, &in.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

// Total implements Storage
func (s *pg) Total(ctx context.Context, cutoff *time.Time) (int64, error) {
	var sb strings.Builder
	var args []any

	sb.WriteString(`SELECT COUNT(*) FROM incidents`)
	if cutoff != nil {
		args = append(args, *cutoff)
		sb.WriteString(` WHERE created_at >= $1`)
	}

	var n int64
	if err := s.q.QueryRow(ctx, sb.String(), args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountByWeek implements Storage. date_trunc('week', ...) buckets into ISO
// weeks starting Monday; weeks without incidents simply do not appear
func (s *pg) CountByWeek(ctx context.Context, cutoff *time.Time) ([]domain.WeekCount, error) {
	var sb strings.Builder
	var args []any

	sb.WriteString(`SELECT date_trunc('week', created_at) AS week, COUNT(*) AS n FROM incidents`)
	if cutoff != nil {
		args = append(args, *cutoff)
		sb.WriteString(` WHERE created_at >= $1`)
	}
	sb.WriteString(` GROUP BY week ORDER BY week ASC`)

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.WeekCount
	for rows.Next() {
		var w domain.WeekCount
		if err := rows.Scan(&w.WeekStart, &w.Count); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// CountByCategory implements Storage. Unknown or free-form categories count
// under their literal value
func (s *pg) CountByCategory(ctx context.Context, cutoff *time.Time) ([]domain.CategoryCount, error) {
	var sb strings.Builder
	var args []any

	sb.WriteString(`SELECT category, COUNT(*) AS n FROM incidents`)
	if cutoff != nil {
		args = append(args, *cutoff)
		sb.WriteString(` WHERE created_at >= $1`)
	}
	sb.WriteString(` GROUP BY category ORDER BY n DESC, category ASC`)

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CategoryCount
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
