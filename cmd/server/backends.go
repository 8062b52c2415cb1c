package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dirk1989/Ideal/internal/config"
	"github.com/Dirk1989/Ideal/internal/handler"
	"github.com/Dirk1989/Ideal/internal/infrastructure/database"
	"github.com/Dirk1989/Ideal/internal/logger"
	"github.com/Dirk1989/Ideal/internal/metrics"
	"github.com/Dirk1989/Ideal/internal/repository"
	"github.com/Dirk1989/Ideal/internal/repository/filestore"
	"github.com/Dirk1989/Ideal/internal/repository/pgstore"
	"github.com/Dirk1989/Ideal/internal/repository/sqlstore"
	"github.com/Dirk1989/Ideal/internal/session"
)

// resources tracks what main must release on shutdown and what /health
// reports on.
type resources struct {
	checks  map[string]handler.Checker
	closers []func()
}

func (r *resources) onClose(fn func()) {
	r.closers = append(r.closers, fn)
}

// close releases resources in reverse order of acquisition.
func (r *resources) close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
}

func openBackend(ctx context.Context, cfg *config.Config, res *resources) (repository.Backend, error) {
	switch cfg.StoreBackend {
	case config.StoreMemory:
		logger.Warn("Using in-memory store, changes are lost on restart")
		return repository.NewMemoryBackend(), nil

	case config.StoreSQLite:
		db, err := database.NewSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store, err := sqlstore.New(ctx, db)
		if err != nil {
			db.Close()
			return nil, err
		}
		res.checks["database"] = store
		logger.Info("Using SQLite store", slog.String("path", cfg.SQLitePath))
		return store, nil

	case config.StorePostgres:
		poolCfg := database.PoolConfig{
			URL:               cfg.DatabaseURL,
			Host:              cfg.DBHost,
			Port:              cfg.DBPort,
			User:              cfg.DBUser,
			Password:          cfg.DBPassword,
			Database:          cfg.DBName,
			SSLMode:           cfg.DBSSLMode,
			MaxConns:          cfg.DBMaxConns,
			MinConns:          cfg.DBMinConns,
			MaxConnLifetime:   cfg.DBMaxConnLifetime,
			MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
			HealthCheckPeriod: cfg.DBHealthCheckPeriod,
		}
		if err := database.Migrate(cfg.MigrationsDir, poolCfg.DSN()); err != nil {
			return nil, err
		}
		pool, err := database.NewPostgres(ctx, poolCfg)
		if err != nil {
			return nil, err
		}

		poolStatsCollector := metrics.NewPoolStatsCollector(pool)
		poolStatsCollector.Start(15 * time.Second)
		res.onClose(poolStatsCollector.Stop)

		store := pgstore.New(pool)
		res.checks["database"] = store
		logger.Info("Using PostgreSQL store")
		return store, nil

	case config.StoreFile, "":
		store, err := filestore.New(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		logger.Info("Using file store", slog.String("dir", cfg.DataDir))
		return store, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func openSessions(ctx context.Context, cfg *config.Config, res *resources) (session.Store, error) {
	switch cfg.SessionBackend {
	case config.SessionRedis:
		client, err := session.NewRedisClient(ctx, session.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		store := session.NewRedisStore(client)
		res.checks["sessions"] = store
		res.onClose(func() { store.Close() })
		logger.Info("Using Redis session store", slog.String("addr", cfg.RedisAddr))
		return store, nil

	case config.SessionMemory, "":
		store := session.NewMemoryStore()
		stop := sweepSessions(store, time.Minute)
		res.onClose(stop)
		return store, nil

	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}

// sweepSessions drops expired tokens every interval until the returned
// func is called.
func sweepSessions(store *session.MemoryStore, interval time.Duration) func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if n := store.Sweep(); n > 0 {
					logger.Debug("Swept expired admin tokens", slog.Int("count", n))
				}
			}
		}
	}()
	return func() { close(done) }
}
