// Package http provides http transport for reporting
package http

import (
	stdhttp "net/http"

	"incstats/internal/modkit/httpkit"
	"incstats/internal/services/report/domain"
)

// StatsInput selects the aggregation window in whole days; nil means all
type StatsInput struct {
	SinceDays *int `json:"since_days,omitempty" validate:"omitempty,min=0" example:"30"`
}

// Register mounts reporting endpoints on the given router
func Register(r httpkit.Router, s domain.QueryPort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[StatsInput](r, "/week", h.byWeek)
	httpkit.PostJSON[StatsInput](r, "/category", h.byCategory)
	httpkit.PostJSON[StatsInput](r, "/overview", h.overview)
}

type handlers struct{ svc domain.QueryPort }

func (h *handlers) byWeek(r *stdhttp.Request, in StatsInput) (any, error) {
	return h.svc.WeeklySeries(r.Context(), in.SinceDays)
}

func (h *handlers) byCategory(r *stdhttp.Request, in StatsInput) (any, error) {
	return h.svc.CategorySeries(r.Context(), in.SinceDays)
}

func (h *handlers) overview(r *stdhttp.Request, in StatsInput) (any, error) {
	return h.svc.Overview(r.Context(), in.SinceDays)
}
