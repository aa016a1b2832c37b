package main

import (
	"context"
	"time"

	"incstats/internal/platform/config"
	"incstats/internal/platform/logger"
	"incstats/internal/platform/store"
)

// One-shot schema bootstrap. Safe to run repeatedly: every statement is
// IF NOT EXISTS
func main() {
	root := config.New()
	dbCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		AppName: "incstats-initdb",
		PG: store.PGConfig{
			Enabled: true,
			URL:     dbCfg.MustString("DBURL"),
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

	if err := st.EnsureSchema(ctx); err != nil {
		l.Fatal().Err(err).Msg("schema bootstrap failed")
	}
	l.Info().Msg("schema ready")
}
