package storage

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/ihp-exam/internal/logger"
	"github.com/jonathan/ihp-exam/internal/schemas"
	"go.uber.org/zap"
)

// Adapter converts structured values to and from the JSON text kept in a
// Store. It never reports failures to its callers.
type Adapter struct {
	store   Store
	log     *zap.Logger
	schemas map[string]*schemas.Schema
}

// NewAdapter wraps store. A nil logger discards log output.
func NewAdapter(store Store, log *zap.Logger) *Adapter {
	if store == nil {
		store = Unavailable{}
	}
	return &Adapter{
		store:   store,
		log:     logger.OrNop(log),
		schemas: make(map[string]*schemas.Schema),
	}
}

// WithSchema registers a JSON Schema that values stored under key must
// satisfy to be loaded.
func (a *Adapter) WithSchema(key string, s *schemas.Schema) *Adapter {
	a.schemas[key] = s
	return a
}

// Store returns the wrapped backend.
func (a *Adapter) Store() Store {
	return a.store
}

// Load reads the value stored under key. The fallback is returned unchanged
// when the key is absent, the store is unavailable, or the stored text is
// not a valid T.
func Load[T any](ctx context.Context, a *Adapter, key string, fallback T) T {
	raw, ok, err := a.store.Get(ctx, key)
	if err != nil {
		a.log.Debug("store read failed, using fallback", zap.String("key", key), zap.Error(err))
		return fallback
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	if strings.TrimSpace(raw) == "null" {
		a.log.Warn("stored value is null, using fallback", zap.String("key", key))
		return fallback
	}

	if s, found := a.schemas[key]; found {
		if err := s.Validate(raw); err != nil {
			a.log.Warn("stored value has wrong shape, using fallback", zap.String("key", key), zap.Error(err))
			return fallback
		}
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		a.log.Warn("stored value is corrupt, using fallback", zap.String("key", key), zap.Error(err))
		return fallback
	}
	return v
}

// Save writes value under key as JSON. Failures are logged and dropped.
func Save[T any](ctx context.Context, a *Adapter, key string, value T) {
	data, err := json.Marshal(value)
	if err != nil {
		a.log.Warn("failed to encode value, not saved", zap.String("key", key), zap.Error(err))
		return
	}
	if err := a.store.Set(ctx, key, string(data)); err != nil {
		a.log.Warn("store write failed, not saved", zap.String("key", key), zap.Error(err))
	}
}
