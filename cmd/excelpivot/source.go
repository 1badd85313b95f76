package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	_ "github.com/microsoft/go-mssqldb" // registers "sqlserver"
	"github.com/superrnovae/excelpivot-go/internal/config"
	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/source"
	_ "modernc.org/sqlite" // registers "sqlite"
)

// openSource runs the configured query and returns its records together
// with a function releasing the rows and the connection.
func openSource(ctx context.Context, cfg *config.Config) (source.Reader, func(), error) {
	if cfg.Driver == config.DriverPostgres {
		return openPgx(ctx, cfg)
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("sql.Open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping: %w", err)
	}
	rows, err := db.QueryContext(ctx, cfg.Query)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	closeFn := func() {
		_ = rows.Close()
		_ = db.Close()
	}

	r, err := source.FromSQL(rows)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return r, closeFn, nil
}

func openPgx(ctx context.Context, cfg *config.Config) (source.Reader, func(), error) {
	conn, err := pgx.Connect(ctx, cfg.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("connect: %w", err)
	}
	rows, err := conn.Query(ctx, cfg.Query)
	if err != nil {
		_ = conn.Close(ctx)
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	closeFn := func() {
		rows.Close()
		_ = conn.Close(context.Background())
	}

	r, err := source.FromPgx(rows)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return r, closeFn, nil
}
