// Package config assembles the job configuration from the environment.
package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"coverage-report/internal/insight"
	"coverage-report/internal/pipeline"
)

// Warehouse driver names accepted by WAREHOUSE_DRIVER.
const (
	DriverClickHouse = "clickhouse"
	DriverPostgres   = "postgres"
)

// Config holds every knob the report job reads. Built once at startup
// and never mutated afterwards.
type Config struct {
	WarehouseDriver string
	WarehouseDSN    string
	WarehouseTable  string
	LookbackDays    int

	GeminiAPIKey   string
	InsightModel   string
	InsightTimeout time.Duration

	NewsFeedURL string

	SlackToken     string
	SlackChannelID string

	ReportBucket string
	ReportPrefix string

	PushgatewayURL string
}

// FromEnv reads the configuration from environment variables. All
// problems are collected into a single error so the operator can fix the
// deployment in one pass.
func FromEnv() (*Config, error) {
	cfg := &Config{
		WarehouseDriver: getenvDefault("WAREHOUSE_DRIVER", DriverClickHouse),
		WarehouseDSN:    os.Getenv("WAREHOUSE_DSN"),
		WarehouseTable:  os.Getenv("WAREHOUSE_TABLE"),
		LookbackDays:    pipeline.DefaultLookbackDays,

		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		InsightModel:   getenvDefault("INSIGHT_MODEL", insight.DefaultModel),
		InsightTimeout: insight.DefaultTimeout,

		NewsFeedURL: os.Getenv("NEWS_FEED_URL"),

		SlackToken:     os.Getenv("SLACK_TOKEN"),
		SlackChannelID: os.Getenv("SLACK_CHANNEL_ID"),

		ReportBucket: os.Getenv("REPORT_BUCKET"),
		ReportPrefix: os.Getenv("REPORT_PREFIX"),

		PushgatewayURL: os.Getenv("PUSHGATEWAY_URL"),
	}

	var problems []string
	var missing []string

	for _, key := range []string{"WAREHOUSE_DSN", "WAREHOUSE_TABLE"} {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}

	if cfg.WarehouseDriver != DriverClickHouse && cfg.WarehouseDriver != DriverPostgres {
		problems = append(problems, fmt.Sprintf("WAREHOUSE_DRIVER must be %q or %q, got %q",
			DriverClickHouse, DriverPostgres, cfg.WarehouseDriver))
	}

	if raw := os.Getenv("LOOKBACK_DAYS"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days <= 0 {
			problems = append(problems, fmt.Sprintf("LOOKBACK_DAYS must be a positive integer, got %q", raw))
		} else {
			cfg.LookbackDays = days
		}
	}

	if raw := os.Getenv("INSIGHT_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			problems = append(problems, fmt.Sprintf("INSIGHT_TIMEOUT must be a positive duration, got %q", raw))
		} else {
			cfg.InsightTimeout = d
		}
	}

	// Destination pairs are all-or-nothing.
	if (cfg.SlackToken == "") != (cfg.SlackChannelID == "") {
		problems = append(problems, "SLACK_TOKEN and SLACK_CHANNEL_ID must be set together")
	}
	if cfg.ReportBucket == "" && cfg.ReportPrefix != "" {
		problems = append(problems, "REPORT_PREFIX requires REPORT_BUCKET")
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		problems = append(problems, "missing required environment: "+strings.Join(missing, ", "))
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return cfg, nil
}

// SlackConfigured reports whether the chat destination can be built.
func (c *Config) SlackConfigured() bool {
	return c.SlackToken != "" && c.SlackChannelID != ""
}

// S3Configured reports whether the document destination can be built.
func (c *Config) S3Configured() bool {
	return c.ReportBucket != ""
}

// HasDestination reports whether at least one delivery destination is
// fully configured.
func (c *Config) HasDestination() bool {
	return c.SlackConfigured() || c.S3Configured()
}

// LoadDotEnv reads KEY=VALUE pairs from a .env file in the working
// directory into the process environment. Existing variables win.
func LoadDotEnv() {
	data, err := os.ReadFile(".env")
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
