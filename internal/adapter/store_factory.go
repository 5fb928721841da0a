package adapter

import (
	"fmt"

	"careerpath/internal/cache"
	"careerpath/internal/config"
	"careerpath/internal/database"
	"careerpath/internal/domain"
	"careerpath/internal/logger"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// NewKeyValueStore builds the configured backend, namespaces it and, when reg
// is non-nil, instruments it. The returned closer releases the backend's
// connections.
func NewKeyValueStore(cfg *config.Config, reg prometheus.Registerer) (domain.KeyValueStore, func() error, error) {
	var (
		store  domain.KeyValueStore
		closer = func() error { return nil }
	)

	switch cfg.Store.Backend {
	case config.StoreBackendMemory:
		store = NewMemoryStoreAdapter()
	case config.StoreBackendRedis:
		client, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		store = NewRedisStoreAdapter(client)
		closer = client.Close
	case config.StoreBackendSQL:
		db, err := database.NewSQLXDB(cfg.DB.Driver, cfg.DB.DSN)
		if err != nil {
			return nil, nil, err
		}
		if err := database.RunMigrations(db.DB, cfg.DB.Driver); err != nil {
			db.Close()
			return nil, nil, err
		}
		store = NewSQLStoreAdapter(db)
		closer = db.Close
	default:
		return nil, nil, fmt.Errorf("unsupported store backend: %s", cfg.Store.Backend)
	}

	logger.Get().Info("Key-value store initialized",
		zap.String("backend", cfg.Store.Backend),
		zap.String("namespace", cfg.Store.Namespace))

	store = NewNamespacedStore(store, cfg.Store.Namespace)
	if reg != nil {
		store = NewInstrumentedStore(store, cfg.Store.Backend, NewStoreMetrics(reg))
	}
	return store, closer, nil
}
