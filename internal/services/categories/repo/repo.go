// Package repo provides the categories repository implementation.
package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"incstats/internal/modkit/repokit"
	"incstats/internal/services/categories/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the categories repository
type Storage interface {
	Insert(ctx context.Context, name string) (created bool, err error)
	Names(ctx context.Context) ([]string, error)
	List(ctx context.Context) ([]domain.Category, error)
}

// Insert implements Storage. The conflict target makes concurrent adds of the
// same name collapse to a single row; only the winning insert returns an id
func (s *pg) Insert(ctx context.Context, name string) (bool, error) {
	var id int64
	err := s.q.QueryRow(ctx, `
		INSERT INTO categories (name) VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING id
	`, name).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Names implements Storage
func (s *pg) Names(ctx context.Context) ([]string, error) {
	rows, err := s.q.Query(ctx, `SELECT name FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// List implements Storage
func (s *pg) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.q.Query(ctx, `SELECT id, name FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
