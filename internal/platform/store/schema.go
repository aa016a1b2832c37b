package store

import "context"

// schema is the deploy-time DDL, applied once by cmd/incstats-initdb.
// Statements are idempotent so reruns are safe
var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id   BIGSERIAL PRIMARY KEY,
		name VARCHAR(50) UNIQUE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS incidents (
		id         BIGSERIAL PRIMARY KEY,
		reporter   VARCHAR(50)   NOT NULL,
		text       VARCHAR(1000) UNIQUE NOT NULL,
		category   VARCHAR(50)   NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ   NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS incidents_created_at_idx ON incidents (created_at)`,
}

// EnsureSchema applies the DDL statements in order inside one transaction
func (s *Store) EnsureSchema(ctx context.Context) error {
	if s == nil || s.PG == nil {
		return nil
	}
	return s.PG.Tx(ctx, func(q RowQuerier) error {
		for _, stmt := range schema {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}
