package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestOptionsFromEnvOverrides(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "42")
	t.Setenv("DB_MAX_IDLE_CONNS", "7")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")
	t.Setenv("DB_PING_TIMEOUT", "2s")

	opts := OptionsFromEnv(DefaultServerOptions())
	if opts.MaxOpenConns != 42 {
		t.Fatalf("expected MaxOpenConns 42, got %d", opts.MaxOpenConns)
	}
	if opts.MaxIdleConns != 7 {
		t.Fatalf("expected MaxIdleConns 7, got %d", opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime != 30*time.Minute {
		t.Fatalf("expected ConnMaxLifetime 30m, got %v", opts.ConnMaxLifetime)
	}
	if opts.PingTimeout != 2*time.Second {
		t.Fatalf("expected PingTimeout 2s, got %v", opts.PingTimeout)
	}
}

func TestOptionsFromEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("DB_CONN_MAX_LIFETIME", "soon")

	defaults := DefaultServerOptions()
	opts := OptionsFromEnv(defaults)
	if opts.MaxOpenConns != defaults.MaxOpenConns {
		t.Fatalf("invalid int must keep default, got %d", opts.MaxOpenConns)
	}
	if opts.ConnMaxLifetime != defaults.ConnMaxLifetime {
		t.Fatalf("invalid duration must keep default, got %v", opts.ConnMaxLifetime)
	}
}

func TestConnectRejectsEmptyURL(t *testing.T) {
	if _, err := Connect(context.Background(), "   ", DefaultServerOptions()); err == nil {
		t.Fatalf("expected error for empty DATABASE_URL")
	}
}

func TestConnectPingsAndAppliesOptions(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	mock.ExpectPing()

	orig := openDB
	openDB = func(driverName, dsn string) (*sql.DB, error) {
		if driverName != "pgx" {
			t.Fatalf("expected pgx driver, got %s", driverName)
		}
		return mockDB, nil
	}
	defer func() { openDB = orig }()

	conn, err := Connect(context.Background(), "postgres://u:p@localhost/db", DefaultServerOptions())
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer conn.Close()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
	if got := conn.Stats().MaxOpenConnections; got != DefaultServerOptions().MaxOpenConns {
		t.Fatalf("expected pool limit applied, got %d", got)
	}
}
