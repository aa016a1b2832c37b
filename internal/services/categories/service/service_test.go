package service

import (
	"context"
	"errors"
	"testing"

	"incstats/internal/modkit/repokit"
	perr "incstats/internal/platform/errors"
	"incstats/internal/services/categories/domain"
	"incstats/internal/services/categories/repo"
)

// fakeStorage implements repo.Storage in memory
type fakeStorage struct {
	names   []string
	inserts []string
	fail    error
}

func (f *fakeStorage) Insert(_ context.Context, name string) (bool, error) {
	if f.fail != nil {
		return false, f.fail
	}
	f.inserts = append(f.inserts, name)
	for _, n := range f.names {
		if n == name {
			return false, nil
		}
	}
	f.names = append(f.names, name)
	return true, nil
}

func (f *fakeStorage) Names(context.Context) ([]string, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return append([]string(nil), f.names...), nil
}

func (f *fakeStorage) List(context.Context) ([]domain.Category, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	out := make([]domain.Category, len(f.names))
	for i, n := range f.names {
		out[i] = domain.Category{ID: int64(i + 1), Name: n}
	}
	return out, nil
}

func bindFake(f *fakeStorage) repokit.Binder[repo.Storage] {
	return repokit.BindFunc[repo.Storage](func(repokit.Queryer) repo.Storage { return f })
}

func TestAdd_TrimsAndValidates(t *testing.T) {
	f := &fakeStorage{}
	s := New(nil, bindFake(f))

	created, err := s.Add(context.Background(), "  network  ")
	if err != nil {
		t.Fatalf("Add err = %v", err)
	}
	if !created {
		t.Fatal("expected created")
	}
	if len(f.inserts) != 1 || f.inserts[0] != "network" {
		t.Fatalf("inserted %v, want trimmed name", f.inserts)
	}
}

func TestAdd_EmptyName(t *testing.T) {
	s := New(nil, bindFake(&fakeStorage{}))
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := s.Add(context.Background(), name)
		if !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("Add(%q) err = %v, want validation", name, err)
		}
	}
}

func TestAdd_TooLong(t *testing.T) {
	s := New(nil, bindFake(&fakeStorage{}))
	long := make([]rune, domain.MaxNameLen+1)
	for i := range long {
		long[i] = 'x'
	}
	if _, err := s.Add(context.Background(), string(long)); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
}

func TestAdd_Idempotent(t *testing.T) {
	f := &fakeStorage{}
	s := New(nil, bindFake(f))
	ctx := context.Background()

	created, _ := s.Add(ctx, "dns")
	again, err := s.Add(ctx, "dns")
	if err != nil {
		t.Fatalf("second Add err = %v", err)
	}
	if !created || again {
		t.Fatalf("created=%v again=%v, want true/false", created, again)
	}
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	f := &fakeStorage{names: []string{"Network", "database", "net-misc", "security"}}
	s := New(nil, bindFake(f))

	got, err := s.Filter(context.Background(), "NET")
	if err != nil {
		t.Fatalf("Filter err = %v", err)
	}
	want := []string{"Network", "net-misc"}
	if len(got) != len(want) {
		t.Fatalf("Filter = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Filter = %v, want %v", got, want)
		}
	}
}

func TestFilter_EmptySubstrReturnsAll(t *testing.T) {
	f := &fakeStorage{names: []string{"a", "b"}}
	s := New(nil, bindFake(f))
	got, err := s.Filter(context.Background(), "")
	if err != nil || len(got) != 2 {
		t.Fatalf("got %v err %v", got, err)
	}
}

func TestNames_StoreFailure(t *testing.T) {
	f := &fakeStorage{fail: errors.New("conn refused")}
	s := New(nil, bindFake(f))
	if _, err := s.Names(context.Background()); err == nil {
		t.Fatal("expected error")
	} else if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("err code = %v, want unavailable", perr.CodeOf(err))
	}
}
