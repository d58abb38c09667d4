package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/wellness-hospital/laboratory/backend/internal/adapters/database"
	"github.com/wellness-hospital/laboratory/backend/internal/application/services"
	"github.com/wellness-hospital/laboratory/backend/internal/infrastructure/clients/postgres"
	"github.com/wellness-hospital/laboratory/backend/internal/infrastructure/observability"
	"github.com/wellness-hospital/laboratory/backend/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS lab_orders (
	id           TEXT PRIMARY KEY,
	uhid         TEXT NOT NULL,
	patient_name TEXT,
	test_name    TEXT NOT NULL,
	technician   TEXT,
	consultant   TEXT,
	status       TEXT NOT NULL DEFAULT 'pending',
	parameters   JSONB NOT NULL DEFAULT '[]',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_lab_orders_uhid ON lab_orders (uhid);
CREATE INDEX IF NOT EXISTS idx_lab_orders_status_created ON lab_orders (status, created_at DESC);

CREATE TABLE IF NOT EXISTS catalog_search_events (
	id               TEXT PRIMARY KEY,
	query            TEXT NOT NULL,
	normalized_query TEXT NOT NULL,
	result_count     INTEGER NOT NULL,
	profile_count    INTEGER NOT NULL,
	test_count       INTEGER NOT NULL,
	latency_ms       INTEGER NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_catalog_search_events_zero ON catalog_search_events (created_at DESC) WHERE result_count = 0;
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	observability.InitLogger("laboratory-seed", cfg.Env)

	ctx := context.Background()

	pgClient, err := postgres.NewClient(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to DB")
	}
	defer pgClient.Close()

	if _, err := pgClient.DB().ExecContext(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}
	log.Info().Msg("schema applied")

	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, truncating tables before seeding")
		if _, err := pgClient.DB().ExecContext(ctx, `TRUNCATE TABLE lab_orders, catalog_search_events`); err != nil {
			log.Fatal().Err(err).Msg("failed to reset tables")
		}
	}

	orderService := services.NewLabOrderService(database.NewLabOrderAdapter(pgClient))

	requests := []services.CreateOrdersRequest{
		{UHID: "UH-100231", PatientName: "Anita Rao", TestNames: []string{"CBC", "Lipid Profile"}, Technician: "R. Menon", Consultant: "Dr. Iyer"},
		{UHID: "UH-100232", PatientName: "Joseph Mathew", TestNames: []string{"LFT", "KFT", "Urine Routine"}, Technician: "R. Menon"},
		{UHID: "UH-100233", PatientName: "Fatima Shaikh", TestNames: []string{"Widal", "Dengue NS1"}, Consultant: "Dr. Kulkarni"},
		{UHID: "UH-100234", PatientName: "Suresh Pillai", TestNames: []string{"Thyroid Profile", "HbA1c"}},
	}

	created := 0
	for _, req := range requests {
		orders, err := orderService.CreateOrders(ctx, req)
		if err != nil {
			log.Error().Err(err).Str("uhid", req.UHID).Msg("failed to create orders")
			continue
		}
		created += len(orders)
	}

	log.Info().Int("orders", created).Msg("seeding completed")
}
