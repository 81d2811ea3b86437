package repository

import (
	"context"
	"time"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetJSON decodes a cached JSON value into dst. found is false on a miss.
	GetJSON(ctx context.Context, key string, dst interface{}) (found bool, err error)

	// SetJSON encodes value as JSON and caches it.
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}
