// Package module wires the incidents service into the API using modkit
package module

import (
	"net/http"

	"incstats/internal/modkit"
	"incstats/internal/modkit/httpkit"
	str "incstats/internal/platform/strings"
	"incstats/internal/services/incidents/domain"
	inchttp "incstats/internal/services/incidents/http"
	increpo "incstats/internal/services/incidents/repo"
	incsvc "incstats/internal/services/incidents/service"
)

// Ports exposed by the incidents module
type Ports struct {
	Upserter domain.UpserterPort
	Query    domain.QueryPort
}

// Module implements the incidents module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	ports    Ports
	register func(httpkit.Router)

	svc *incsvc.Service
}

// New constructs the incidents module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("incidents"), modkit.WithPrefix("/incidents")},
		opts...,
	)...)

	svc := incsvc.New(deps.PG, increpo.NewPG())

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.ports = Ports{Upserter: svc, Query: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		inchttp.Register(r, svc)
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

// Ports returns the module ports (Upserter, Query)
func (m *Module) Ports() any { return m.ports }
