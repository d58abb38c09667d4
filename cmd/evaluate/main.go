package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/wellness-hospital/laboratory/backend/internal/application/services"
	"github.com/wellness-hospital/laboratory/backend/internal/catalog"
	"github.com/wellness-hospital/laboratory/backend/internal/evaluation"
	"github.com/wellness-hospital/laboratory/backend/internal/infrastructure/observability"
)

func main() {
	goldenPath := flag.String("golden", "config/golden_queries.json", "path to the golden query set")
	minRecall := flag.Float64("min-recall", 0.8, "minimum average recall@10")
	minMRR := flag.Float64("min-mrr", 0.8, "minimum average mrr@10")
	verbose := flag.Bool("v", false, "print per-query results")
	flag.Parse()

	observability.InitLogger("laboratory-evaluate", os.Getenv("APP_ENV"))

	if _, err := os.Stat(*goldenPath); err != nil {
		if _, altErr := os.Stat("backend/" + *goldenPath); altErr == nil {
			*goldenPath = "backend/" + *goldenPath
		}
	}

	queries, err := evaluation.LoadGoldenQueries(*goldenPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load golden queries")
	}
	if err := evaluation.ValidateGoldenQueries(queries); err != nil {
		log.Fatal().Err(err).Msg("invalid golden queries")
	}

	catalogService := services.NewCatalogService(catalog.Default(), nil, nil)

	summary, results, err := evaluation.NewRunner(catalogService).Run(context.Background(), queries)
	if err != nil {
		log.Fatal().Err(err).Msg("evaluation failed")
	}

	output := map[string]interface{}{"summary": summary}
	if *verbose {
		output["results"] = results
	}
	out, _ := json.MarshalIndent(output, "", "  ")
	fmt.Println(string(out))

	thresholds := evaluation.Thresholds{MinAvgRecallAt10: *minRecall, MinAvgMRRAt10: *minMRR}
	if err := thresholds.Check(summary); err != nil {
		log.Error().Err(err).Strs("misses", summary.Misses).Msg("catalog search below thresholds")
		os.Exit(1)
	}
}
