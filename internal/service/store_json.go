package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"careerpath/internal/domain"
	"careerpath/internal/logger"

	"go.uber.org/zap"
)

// loadJSON decodes the document stored at key into dest. An absent, empty or
// JSON null value reports found == false and leaves dest untouched.
func loadJSON(ctx context.Context, store domain.KeyValueStore, key string, dest interface{}) (bool, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			logger.Get().Debug("Store miss", zap.String("key", key))
			return false, nil
		}
		logger.Get().Error("Failed to read from store", zap.Error(err), zap.String("key", key))
		return false, domain.NewStoreError("get", key, err)
	}

	trimmed := strings.TrimSpace(data)
	if trimmed == "" || trimmed == "null" {
		return false, nil
	}

	if err := json.Unmarshal([]byte(trimmed), dest); err != nil {
		logger.Get().Error("Failed to unmarshal persisted value", zap.Error(err), zap.String("key", key))
		return false, domain.NewCorruptDataError(key, err)
	}
	return true, nil
}

// saveJSON replaces the document stored at key.
func saveJSON(ctx context.Context, store domain.KeyValueStore, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Get().Error("Failed to marshal value for store", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError("failed to marshal value for key "+key, err)
	}

	if err := store.Set(ctx, key, string(data)); err != nil {
		logger.Get().Error("Failed to write to store", zap.Error(err), zap.String("key", key))
		return domain.NewStoreError("set", key, err)
	}
	return nil
}
