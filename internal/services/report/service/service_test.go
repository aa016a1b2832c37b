package service

import (
	"context"
	"errors"
	"testing"
	"time"

	incdom "incstats/internal/services/incidents/domain"
	"incstats/internal/services/report/domain"
)

type fakeQuery struct {
	weeks []incdom.WeekCount
	cats  []incdom.CategoryCount
	total int64
	fail  error
}

func (f *fakeQuery) List(context.Context, *int) ([]incdom.Incident, error) { return nil, f.fail }
func (f *fakeQuery) Total(context.Context, *int) (int64, error)            { return f.total, f.fail }
func (f *fakeQuery) CountByWeek(context.Context, *int) ([]incdom.WeekCount, error) {
	return f.weeks, f.fail
}
func (f *fakeQuery) CountByCategory(context.Context, *int) ([]incdom.CategoryCount, error) {
	return f.cats, f.fail
}

type fakeRenderer struct {
	rendered []domain.Kind
	fail     error
}

func (f *fakeRenderer) Render(_ context.Context, s domain.Series, kind domain.Kind) (string, error) {
	if f.fail != nil {
		return "", f.fail
	}
	f.rendered = append(f.rendered, kind)
	return "https://chart.test/" + string(kind), nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeeklySeries_LabelsAscending(t *testing.T) {
	q := &fakeQuery{weeks: []incdom.WeekCount{
		{WeekStart: day(2024, 1, 1), Count: 2},
		{WeekStart: day(2024, 1, 8), Count: 1},
	}}
	s := New(q, &fakeRenderer{})

	series, err := s.WeeklySeries(context.Background(), nil)
	if err != nil {
		t.Fatalf("WeeklySeries err = %v", err)
	}
	wantLabels := []string{"2024-01-01", "2024-01-08"}
	wantValues := []int64{2, 1}
	if len(series.Labels) != 2 {
		t.Fatalf("series = %+v", series)
	}
	for i := range wantLabels {
		if series.Labels[i] != wantLabels[i] || series.Values[i] != wantValues[i] {
			t.Fatalf("series = %+v, want labels %v values %v", series, wantLabels, wantValues)
		}
	}
}

func TestCategorySeries_OrderPreserved(t *testing.T) {
	q := &fakeQuery{cats: []incdom.CategoryCount{
		{Category: "network", Count: 5},
		{Category: "access", Count: 2},
		{Category: "database", Count: 2},
	}}
	s := New(q, &fakeRenderer{})

	series, err := s.CategorySeries(context.Background(), nil)
	if err != nil {
		t.Fatalf("CategorySeries err = %v", err)
	}
	want := []string{"network", "access", "database"}
	for i := range want {
		if series.Labels[i] != want[i] {
			t.Fatalf("labels = %v, want %v", series.Labels, want)
		}
	}
}

func TestSeries_EmptyStore(t *testing.T) {
	s := New(&fakeQuery{}, &fakeRenderer{})

	weekly, err := s.WeeklySeries(context.Background(), nil)
	if err != nil {
		t.Fatalf("WeeklySeries err = %v", err)
	}
	if len(weekly.Labels) != 0 || len(weekly.Values) != 0 {
		t.Fatalf("expected empty series, got %+v", weekly)
	}

	byCat, err := s.CategorySeries(context.Background(), nil)
	if err != nil {
		t.Fatalf("CategorySeries err = %v", err)
	}
	if len(byCat.Labels) != 0 {
		t.Fatalf("expected empty series, got %+v", byCat)
	}
}

func TestOverview_RendersBothCharts(t *testing.T) {
	q := &fakeQuery{
		total: 3,
		weeks: []incdom.WeekCount{{WeekStart: day(2024, 1, 1), Count: 3}},
		cats:  []incdom.CategoryCount{{Category: "network", Count: 3}},
	}
	r := &fakeRenderer{}
	s := New(q, r)

	ov, err := s.Overview(context.Background(), nil)
	if err != nil {
		t.Fatalf("Overview err = %v", err)
	}
	if ov.Total != 3 {
		t.Fatalf("total = %d", ov.Total)
	}
	if ov.WeeklyChartURL != "https://chart.test/line" || ov.CategoryChartURL != "https://chart.test/bar" {
		t.Fatalf("urls = %q %q", ov.WeeklyChartURL, ov.CategoryChartURL)
	}
	if len(r.rendered) != 2 || r.rendered[0] != domain.KindLine || r.rendered[1] != domain.KindBar {
		t.Fatalf("rendered kinds = %v", r.rendered)
	}
}

func TestOverview_RendererFailure(t *testing.T) {
	q := &fakeQuery{total: 1}
	s := New(q, &fakeRenderer{fail: errors.New("chart host down")})
	if _, err := s.Overview(context.Background(), nil); err == nil {
		t.Fatal("expected error")
	}
}
