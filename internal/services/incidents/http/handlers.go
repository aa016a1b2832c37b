// Package http provides http transport for incidents
package http

import (
	stdhttp "net/http"

	"incstats/internal/modkit/httpkit"
	svc "incstats/internal/services/incidents/service"
)

// ListInput selects incidents within the last SinceDays whole days.
// A nil SinceDays means everything
type ListInput struct {
	SinceDays *int `json:"since_days,omitempty" validate:"omitempty,min=0" example:"30"`
}

// TotalOutput is the total incident count within the window
type TotalOutput struct {
	Total int64 `json:"total"`
}

// Register mounts incident endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[ListInput](r, "/list", h.list)
	httpkit.PostJSON[ListInput](r, "/total", h.total)
}

type handlers struct{ svc *svc.Service }

func (h *handlers) list(r *stdhttp.Request, in ListInput) (any, error) {
	return h.svc.List(r.Context(), in.SinceDays)
}

func (h *handlers) total(r *stdhttp.Request, in ListInput) (any, error) {
	total, err := h.svc.Total(r.Context(), in.SinceDays)
	if err != nil {
		return nil, err
	}
	return TotalOutput{Total: total}, nil
}
