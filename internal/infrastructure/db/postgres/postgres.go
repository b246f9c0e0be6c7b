// Package postgres is the relational store behind users, cash flow, and
// inventory. All queries are parameterized; uniqueness rules live in the
// schema so concurrent writers cannot race past an application check.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open connects via the pgx stdlib driver and applies pool defaults.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)
	return db, nil
}

// Migrate creates the schema when it does not exist yet. The statements are
// idempotent so startup can always run them.
func Migrate(ctx context.Context, db *sql.DB) error {
	const schema = `
create table if not exists users (
	id            text primary key,
	email         text not null unique,
	password_hash text not null,
	name          text not null default '',
	role          text not null,
	created_at    timestamptz not null,
	updated_at    timestamptz not null
);

create table if not exists sales (
	id          text primary key,
	amount      double precision not null,
	description text not null default '',
	user_id     text references users(id),
	date        timestamptz not null
);

create table if not exists expenses (
	id          text primary key,
	amount      double precision not null,
	description text not null default '',
	user_id     text references users(id),
	date        timestamptz not null
);

create table if not exists inventory_items (
	id          text primary key,
	name        text not null,
	description text not null default '',
	category    text not null default '',
	price       double precision not null,
	created_at  timestamptz not null,
	updated_at  timestamptz not null
);

create table if not exists stock_levels (
	item_id      text primary key references inventory_items(id),
	quantity     integer not null,
	min_quantity integer not null default 0,
	updated_at   timestamptz not null
);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("postgres migrate: %w", err)
	}
	return nil
}
