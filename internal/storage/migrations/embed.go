package migrations

import "embed"

// PostgresFS embeds the Postgres mart DDL.
//
//go:embed postgres/*.sql
var PostgresFS embed.FS

// ClickhouseFS embeds the ClickHouse mart DDL.
//
//go:embed clickhouse/*.sql
var ClickhouseFS embed.FS
