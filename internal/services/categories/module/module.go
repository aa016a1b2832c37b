// Package module wires the categories service into the API using modkit
package module

import (
	"net/http"

	"incstats/internal/modkit"
	"incstats/internal/modkit/httpkit"
	str "incstats/internal/platform/strings"
	"incstats/internal/services/categories/domain"
	cathttp "incstats/internal/services/categories/http"
	catrepo "incstats/internal/services/categories/repo"
	catsvc "incstats/internal/services/categories/service"
)

// Ports exposed by the categories module
type Ports struct {
	Writer domain.WriterPort
	Reader domain.ReaderPort
}

// Module implements the categories module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	ports    Ports
	register func(httpkit.Router)

	svc *catsvc.Service
}

// New constructs the categories module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("categories"), modkit.WithPrefix("/categories")},
		opts...,
	)...)

	svc := catsvc.New(deps.PG, catrepo.NewPG())

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.ports = Ports{Writer: svc, Reader: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		cathttp.Register(r, svc)
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

// Ports returns the module ports (Writer, Reader)
func (m *Module) Ports() any { return m.ports }
