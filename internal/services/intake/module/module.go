// Package module wires the intake workflow and exposes its port
package module

import (
	"incstats/internal/modkit"
	"incstats/internal/modkit/httpkit"
	catdom "incstats/internal/services/categories/domain"
	incdom "incstats/internal/services/incidents/domain"
	"incstats/internal/services/intake/domain"
	intsvc "incstats/internal/services/intake/service"
	repdom "incstats/internal/services/report/domain"
)

// Wiring holds the collaborator ports the workflow composes
type Wiring struct {
	Categories catdom.ReaderPort
	CatWriter  catdom.WriterPort
	Incidents  incdom.UpserterPort
	Reports    repdom.QueryPort
}

// Ports exposed by the intake module
type Ports struct {
	Workflow domain.WorkflowPort
}

// Module implements the intake module. It mounts no HTTP routes; the chat
// adapter is its only caller
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the intake module
func New(deps modkit.Deps, w Wiring) *Module {
	svc := intsvc.New(w.Categories, w.CatWriter, w.Incidents, w.Reports)

	m := &Module{deps: deps}
	m.ports = Ports{Workflow: svc}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "intake" }

// Ports returns the module ports (Workflow)
func (m *Module) Ports() any { return m.ports }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
