// Package service provides the incidents service implementation
package service

import (
	"context"
	"strings"
	"time"

	"incstats/internal/modkit/repokit"
	perr "incstats/internal/platform/errors"
	"incstats/internal/services/incidents/domain"
	"incstats/internal/services/incidents/repo"
)

// Service implements domain.UpserterPort and domain.QueryPort
type Service struct {
	db     repokit.TxRunner
	repo   repo.Storage
	binder repokit.Binder[repo.Storage]

	// now is a seam for cutoff tests
	now func() time.Time
}

// New constructs a new incidents service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage]) *Service {
	return &Service{
		db:     db,
		binder: binder,
		repo:   binder.Bind(db),
		now:    time.Now,
	}
}

// Upsert implements domain.UpserterPort
func (s *Service) Upsert(ctx context.Context, reporter, text, category string) error {
	if strings.TrimSpace(text) == "" {
		return perr.Validationf("incident text must not be empty")
	}
	if len([]rune(text)) > domain.MaxTextLen {
		return perr.Validationf("incident text exceeds %d characters", domain.MaxTextLen)
	}
	if err := s.repo.Upsert(ctx, reporter, text, category); err != nil {
		return perr.FromPostgres(err, "upsert incident")
	}
	return nil
}

// List implements domain.QueryPort
func (s *Service) List(ctx context.Context, sinceDays *int) ([]domain.Incident, error) {
	out, err := s.repo.List(ctx, s.cutoff(sinceDays))
	if err != nil {
		return nil, perr.FromPostgres(err, "list incidents")
	}
	return out, nil
}

// Total implements domain.QueryPort
func (s *Service) Total(ctx context.Context, sinceDays *int) (int64, error) {
	n, err := s.repo.Total(ctx, s.cutoff(sinceDays))
	if err != nil {
		return 0, perr.FromPostgres(err, "count incidents")
	}
	return n, nil
}

// CountByWeek implements domain.QueryPort
func (s *Service) CountByWeek(ctx context.Context, sinceDays *int) ([]domain.WeekCount, error) {
	out, err := s.repo.CountByWeek(ctx, s.cutoff(sinceDays))
	if err != nil {
		return nil, perr.FromPostgres(err, "count incidents by week")
	}
	return out, nil
}

// CountByCategory implements domain.QueryPort
func (s *Service) CountByCategory(ctx context.Context, sinceDays *int) ([]domain.CategoryCount, error) {
	out, err := s.repo.CountByCategory(ctx, s.cutoff(sinceDays))
	if err != nil {
		return nil, perr.FromPostgres(err, "count incidents by category")
	}
	return out, nil
}

// cutoff converts a day window into an absolute timestamp. Whole-day
// arithmetic via AddDate, so "7" means now minus exactly seven days
func (s *Service) cutoff(sinceDays *int) *time.Time {
	if sinceDays == nil {
		return nil
	}
	n := *sinceDays
	if n < 0 {
		n = 0
	}
	t := s.now().AddDate(0, 0, -n)
	return &t
}
