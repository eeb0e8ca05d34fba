// Package storage opens the metadata repository selected by configuration.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/goalline/internal/client/config"
	"github.com/dmitrijs2005/goalline/internal/client/migrations"
	"github.com/dmitrijs2005/goalline/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/goalline/internal/filex"
	"github.com/go-redis/redis/v8"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// InitDatabase opens (creating if needed) the SQLite file at path and
// brings its schema up to date. "~" in path is expanded.
func InitDatabase(ctx context.Context, path string) (*sql.DB, error) {
	dsn, err := filex.PrepareFile(path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Open returns the metadata repository for cfg.StorageBackend.
func Open(ctx context.Context, cfg *config.Config) (metadata.Repository, error) {
	switch cfg.StorageBackend {
	case config.StorageSQLite, "":
		db, err := InitDatabase(ctx, cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("sqlite storage: %w", err)
		}
		return metadata.NewSQLiteRepository(db), nil

	case config.StorageRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis storage: %w", err)
		}
		return metadata.NewRedisRepository(rdb, cfg.RedisPrefix), nil

	case config.StorageMemory:
		return metadata.NewMemoryRepository(), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
