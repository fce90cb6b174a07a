// Command report runs one coverage report pass: fetch daily coverage
// metrics from the warehouse, classify them, generate a narrative, and
// deliver the result to the configured destinations.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"coverage-report/internal/config"
	"coverage-report/internal/delivery"
	"coverage-report/internal/insight"
	"coverage-report/internal/news"
	"coverage-report/internal/observability"
	"coverage-report/internal/pipeline"
	"coverage-report/internal/storage"
	chstore "coverage-report/internal/storage/clickhouse"
	"coverage-report/internal/storage/memory"
	pgstore "coverage-report/internal/storage/postgres"
)

func main() {
	useFixtures := flag.Bool("use-fixtures", false, "Run against in-memory demo data and print to stdout")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Str("job", "coverage-report").Logger()
	ctx := context.Background()

	if *useFixtures {
		if err := runFixtures(ctx, logger); err != nil {
			logger.Error().Err(err).Msg("fixture run failed")
			os.Exit(1)
		}
		return
	}

	config.LoadDotEnv()
	cfg, err := config.FromEnv()
	if err != nil {
		logger.Error().Err(err).Msg("configuration error")
		os.Exit(1)
	}
	if !cfg.HasDestination() {
		logger.Error().Msg("no delivery destination configured; set SLACK_TOKEN/SLACK_CHANNEL_ID or REPORT_BUCKET, or pass -use-fixtures")
		os.Exit(1)
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error().Err(err).Msg("report run failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	store, closeStore, err := newMetricStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect warehouse: %w", err)
	}
	defer closeStore()

	destinations, err := newDestinations(ctx, cfg, logger)
	if err != nil {
		return err
	}
	dispatcher := delivery.NewDispatcher(logger, destinations...)
	logger.Info().Int("destinations", dispatcher.Destinations()).Msg("delivery destinations configured")

	metrics := observability.NewMetrics()
	runner := pipeline.NewRunner(store, dispatcher, cfg.LookbackDays, logger).
		WithMetrics(metrics)

	if cfg.GeminiAPIKey != "" {
		runner = runner.WithNarrator(insight.NewGeminiNarrator(cfg.GeminiAPIKey, cfg.InsightModel, cfg.InsightTimeout))
	} else {
		logger.Info().Msg("GEMINI_API_KEY not set, narrative generation disabled")
	}
	if cfg.NewsFeedURL != "" {
		runner = runner.WithNews(news.NewFetcher(cfg.NewsFeedURL, news.DefaultLimit))
	}

	result, runErr := runner.Run(ctx)

	if cfg.PushgatewayURL != "" {
		pushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := metrics.Push(pushCtx, cfg.PushgatewayURL); err != nil {
			logger.Warn().Err(err).Msg("metrics push failed")
		}
	}

	if runErr != nil {
		return runErr
	}
	logger.Info().
		Str("run_id", result.Report.RunID).
		Int("destinations", len(result.Outcomes)).
		Msg("report delivered")
	return nil
}

// runFixtures executes the pipeline over demo data with no external
// dependencies. Useful for local smoke runs and reviewing the output
// format.
func runFixtures(ctx context.Context, logger zerolog.Logger) error {
	store := memory.NewDailyMetricStore()
	if err := pipeline.LoadFixtureMetrics(store, time.Now().UTC()); err != nil {
		return fmt.Errorf("load fixtures: %w", err)
	}

	dispatcher := delivery.NewDispatcher(logger, delivery.NewStdoutDestination(os.Stdout))
	runner := pipeline.NewRunner(store, dispatcher, pipeline.DefaultLookbackDays, logger)

	_, err := runner.Run(ctx)
	return err
}

func newMetricStore(ctx context.Context, cfg *config.Config) (storage.MetricStore, func(), error) {
	switch cfg.WarehouseDriver {
	case config.DriverPostgres:
		pool, err := pgstore.NewPool(ctx, cfg.WarehouseDSN)
		if err != nil {
			return nil, nil, err
		}
		store, err := pgstore.NewDailyMetricStore(pool, cfg.WarehouseTable)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil
	default:
		conn, err := chstore.NewConn(ctx, cfg.WarehouseDSN)
		if err != nil {
			return nil, nil, err
		}
		store, err := chstore.NewDailyMetricStore(conn, cfg.WarehouseTable)
		if err != nil {
			conn.Close()
			return nil, nil, err
		}
		return store, func() { conn.Close() }, nil
	}
}

func newDestinations(ctx context.Context, cfg *config.Config, logger zerolog.Logger) ([]delivery.Destination, error) {
	var destinations []delivery.Destination

	if cfg.SlackConfigured() {
		destinations = append(destinations, delivery.NewSlackDestination(cfg.SlackToken, cfg.SlackChannelID, logger))
	}
	if cfg.S3Configured() {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		client := s3.NewFromConfig(awsCfg)
		destinations = append(destinations, delivery.NewS3DocumentDestination(client, cfg.ReportBucket, cfg.ReportPrefix, logger))
	}
	return destinations, nil
}
