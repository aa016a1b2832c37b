package main

import (
	"context"
	"os/signal"
	"syscall"

	"incstats/internal/modkit"
	"incstats/internal/modkit/module"
	"incstats/internal/platform/config"
	"incstats/internal/platform/logger"
	"incstats/internal/platform/store"

	slackchat "incstats/internal/adapters/chat/slack"
	"incstats/internal/adapters/chart/quickchart"
	catmod "incstats/internal/services/categories/module"
	incmod "incstats/internal/services/incidents/module"
	intakemod "incstats/internal/services/intake/module"
	repmod "incstats/internal/services/report/module"
)

func main() {
	root := config.New()
	dbCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		AppName: "incstats-bot",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         dbCfg.MustString("DBURL"),
			MaxConns:    int32(dbCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: dbCfg.MayInt("SLOW_MS", 500),
			LogSQL:      dbCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}

	categories := catmod.New(deps)
	incidents := incmod.New(deps)

	catPorts := module.MustPortsOf[catmod.Ports](categories)
	incPorts := module.MustPortsOf[incmod.Ports](incidents)

	reports := repmod.New(deps, repmod.Wiring{
		Incidents: incPorts.Query,
		Charts:    quickchart.New(),
	})
	repPorts := module.MustPortsOf[repmod.Ports](reports)

	intake := intakemod.New(deps, intakemod.Wiring{
		Categories: catPorts.Reader,
		CatWriter:  catPorts.Writer,
		Incidents:  incPorts.Upserter,
		Reports:    repPorts.Query,
	})
	module.Register(intake.Name(), intake.Ports())

	workflow := module.MustPortsOf[intakemod.Ports](intake).Workflow

	adapter := slackchat.New(slackchat.FromConfig(root), workflow)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := adapter.Run(ctx); err != nil && ctx.Err() == nil {
		l.Fatal().Err(err).Msg("slack adapter failed")
	}
}
