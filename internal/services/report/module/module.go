// Package module wires the report service into the API using modkit
package module

import (
	"net/http"

	"incstats/internal/modkit"
	"incstats/internal/modkit/httpkit"
	str "incstats/internal/platform/strings"
	incdom "incstats/internal/services/incidents/domain"
	"incstats/internal/services/report/domain"
	rephttp "incstats/internal/services/report/http"
	repsvc "incstats/internal/services/report/service"
)

// Wiring holds the cross-module collaborators the report module needs
type Wiring struct {
	Incidents incdom.QueryPort
	Charts    domain.ChartRenderer
}

// Ports exposed by the report module
type Ports struct {
	Query domain.QueryPort
}

// Module implements the report module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	ports    Ports
	register func(httpkit.Router)

	svc *repsvc.Service
}

// New constructs the report module. Wiring comes in explicitly because the
// module has no storage of its own
func New(deps modkit.Deps, w Wiring, opts ...modkit.Option) *Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("report"), modkit.WithPrefix("/stats")},
		opts...,
	)...)

	svc := repsvc.New(w.Incidents, w.Charts)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.ports = Ports{Query: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		rephttp.Register(r, svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		m.register(rr)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports returns the module ports (Query)
func (m *Module) Ports() any { return m.ports }
