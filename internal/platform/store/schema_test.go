package store

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// recordingTx records every statement executed inside Tx
type recordingTx struct {
	fakeTxNoPing
	stmts   []string
	failOn  string
	txCalls int
}

func (r *recordingTx) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	r.txCalls++
	return fn(recordingQ{r})
}

type recordingQ struct{ r *recordingTx }

func (q recordingQ) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	q.r.stmts = append(q.r.stmts, sql)
	if q.r.failOn != "" && strings.Contains(sql, q.r.failOn) {
		var z CommandTag
		return z, errors.New("ddl failed")
	}
	var z CommandTag
	return z, nil
}

func (q recordingQ) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	var z Rows
	return z, nil
}

func (q recordingQ) QueryRow(ctx context.Context, sql string, args ...any) Row {
	var z Row
	return z
}

func TestEnsureSchema_NilSafe(t *testing.T) {
	t.Parallel()

	var s *Store
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("nil store should be a no-op, got %v", err)
	}

	s = &Store{}
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("nil PG should be a no-op, got %v", err)
	}
}

func TestEnsureSchema_AppliesAllStatementsInOrder(t *testing.T) {
	t.Parallel()

	rec := &recordingTx{}
	s := &Store{PG: rec}

	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema error: %v", err)
	}
	if rec.txCalls != 1 {
		t.Fatalf("expected a single transaction, got %d", rec.txCalls)
	}
	if len(rec.stmts) != len(schema) {
		t.Fatalf("expected %d statements, got %d", len(schema), len(rec.stmts))
	}

	// categories table comes before incidents, index last
	if !strings.Contains(rec.stmts[0], "categories") {
		t.Fatalf("first statement should create categories, got %q", rec.stmts[0])
	}
	if !strings.Contains(rec.stmts[1], "incidents") {
		t.Fatalf("second statement should create incidents, got %q", rec.stmts[1])
	}
	if !strings.Contains(rec.stmts[len(rec.stmts)-1], "INDEX") {
		t.Fatalf("last statement should create the index, got %q", rec.stmts[len(rec.stmts)-1])
	}
}

func TestEnsureSchema_StopsOnFirstError(t *testing.T) {
	t.Parallel()

	rec := &recordingTx{failOn: "incidents"}
	s := &Store{PG: rec}

	err := s.EnsureSchema(context.Background())
	if err == nil {
		t.Fatalf("expected DDL error to bubble")
	}
	// failed on the second statement, so the index never ran
	if len(rec.stmts) != 2 {
		t.Fatalf("expected execution to stop after failure, ran %d statements", len(rec.stmts))
	}
}
