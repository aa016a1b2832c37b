// Package api provides the HTTP API for the application
package api

import (
	stdhttp "net/http"

	"incstats/internal/platform/config"
	"incstats/internal/platform/logger"
	phttp "incstats/internal/platform/net/http"
	"incstats/internal/platform/store"

	"incstats/internal/modkit"
	"incstats/internal/modkit/httpkit"
	"incstats/internal/modkit/module"

	"incstats/internal/adapters/chart/quickchart"
	"incstats/internal/core/version"
	catmod "incstats/internal/services/categories/module"
	incmod "incstats/internal/services/incidents/module"
	repmod "incstats/internal/services/report/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Log: *opt.Logger,
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	categories := catmod.New(deps)
	incidents := incmod.New(deps)

	// report composes the incidents query port with the chart collaborator
	incPorts := module.MustPortsOf[incmod.Ports](incidents)
	reports := repmod.New(deps, repmod.Wiring{
		Incidents: incPorts.Query,
		Charts:    quickchart.New(),
	})

	mods := []module.Module{categories, incidents, reports}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		httpkit.Get(api, "/version", func(_ *stdhttp.Request) (any, error) {
			return version.Info("incstats-api"), nil
		})

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its prefix
			m.MountRoutes(api)
		}
	})
}
