// Package http provides http transport for categories
package http

import (
	stdhttp "net/http"

	"incstats/internal/modkit/httpkit"
	svc "incstats/internal/services/categories/service"
)

// AddInput is the payload for creating a category
type AddInput struct {
	Name string `json:"name" validate:"required,min=1,max=50" example:"network"`
}

// AddOutput reports whether the insert created a new row
type AddOutput struct {
	Name    string `json:"name"`
	Created bool   `json:"created"`
}

// Register mounts category endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[AddInput](r, "/", h.add)
	httpkit.Get(r, "/", h.list)
}

type handlers struct{ svc *svc.Service }

func (h *handlers) add(r *stdhttp.Request, in AddInput) (any, error) {
	created, err := h.svc.Add(r.Context(), in.Name)
	if err != nil {
		return nil, err
	}
	return AddOutput{Name: in.Name, Created: created}, nil
}

func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}
