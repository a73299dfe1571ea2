package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Schema crea la tabla animals. position conserva el orden de admisión.
const Schema = `
CREATE TABLE IF NOT EXISTS animals (
	position   BIGSERIAL PRIMARY KEY,
	id         TEXT        NOT NULL UNIQUE,
	kind       TEXT        NOT NULL,
	name       TEXT        NOT NULL,
	age        INTEGER     NOT NULL CHECK (age >= 0),
	species    TEXT        NOT NULL,
	diet       TEXT        NOT NULL,
	habitat    TEXT        NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	return err
}
