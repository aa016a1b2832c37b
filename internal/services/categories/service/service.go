// Package service provides the categories service implementation
package service

import (
	"context"
	"strings"

	"incstats/internal/modkit/repokit"
	perr "incstats/internal/platform/errors"
	pstrings "incstats/internal/platform/strings"
	"incstats/internal/services/categories/domain"
	"incstats/internal/services/categories/repo"
)

// Service implements domain.WriterPort and domain.ReaderPort
type Service struct {
	db     repokit.TxRunner
	repo   repo.Storage
	binder repokit.Binder[repo.Storage]
}

// New constructs a new categories service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage]) *Service {
	return &Service{
		db:     db,
		binder: binder,
		repo:   binder.Bind(db),
	}
}

// Add implements domain.WriterPort
func (s *Service) Add(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, perr.Validationf("category name must not be empty")
	}
	if len([]rune(name)) > domain.MaxNameLen {
		return false, perr.Validationf("category name exceeds %d characters", domain.MaxNameLen)
	}
	created, err := s.repo.Insert(ctx, name)
	if err != nil {
		return false, perr.FromPostgresf(err, "insert category %q", name)
	}
	return created, nil
}

// Names implements domain.ReaderPort
func (s *Service) Names(ctx context.Context) ([]string, error) {
	names, err := s.repo.Names(ctx)
	if err != nil {
		return nil, perr.FromPostgres(err, "list categories")
	}
	return names, nil
}

// Filter implements domain.ReaderPort. Filtering happens here rather than in
// SQL so a dropdown keystroke never needs an ILIKE pattern escape
func (s *Service) Filter(ctx context.Context, substr string) ([]string, error) {
	names, err := s.Names(ctx)
	if err != nil {
		return nil, err
	}
	if substr == "" {
		return names, nil
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		if pstrings.ContainsFold(n, substr) {
			out = append(out, n)
		}
	}
	return out, nil
}

// List returns full category rows for the API surface
func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	cats, err := s.repo.List(ctx)
	if err != nil {
		return nil, perr.FromPostgres(err, "list categories")
	}
	return cats, nil
}
