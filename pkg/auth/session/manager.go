// Package session stores server-side session markers for issued access
// tokens. The API stays usable without it: tokens are self-contained, the
// marker only exists so logout has something to invalidate.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kmorales-dev/closetwish-backend/pkg/config"
	redisclient "github.com/kmorales-dev/closetwish-backend/pkg/redis"
	redislib "github.com/redis/go-redis/v9"
)

type markerStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type markerKeyer interface {
	SessionKey(accessID string) string
}

// Manager writes and clears session markers keyed by the token's jti.
type Manager struct {
	store markerStore
	keyer markerKeyer
	ttl   time.Duration
}

// NewManager constructs a marker store backed by Redis. The marker TTL tracks
// the access token lifetime so stale markers expire on their own.
func NewManager(client *redisclient.Client, cfg config.JWTConfig) (*Manager, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	ttl := cfg.Expiration()
	if ttl <= 0 {
		return nil, fmt.Errorf("token lifetime must be positive")
	}
	return &Manager{store: client, keyer: client, ttl: ttl}, nil
}

// Mark records that the token identified by accessID belongs to userID.
func (m *Manager) Mark(ctx context.Context, accessID string, userID uint) error {
	if strings.TrimSpace(accessID) == "" {
		return fmt.Errorf("access id is required")
	}
	value := strconv.FormatUint(uint64(userID), 10)
	return m.store.Set(ctx, m.keyer.SessionKey(accessID), value, m.ttl)
}

// Clear removes the marker if present. Clearing an absent marker is not an
// error; logout must succeed either way.
func (m *Manager) Clear(ctx context.Context, accessID string) error {
	if strings.TrimSpace(accessID) == "" {
		return nil
	}
	if err := m.store.Del(ctx, m.keyer.SessionKey(accessID)); err != nil && !errors.Is(err, redislib.Nil) {
		return err
	}
	return nil
}

// Has reports whether a marker exists for the access identifier.
func (m *Manager) Has(ctx context.Context, accessID string) (bool, error) {
	if strings.TrimSpace(accessID) == "" {
		return false, nil
	}
	if _, err := m.store.Get(ctx, m.keyer.SessionKey(accessID)); err != nil {
		if errors.Is(err, redislib.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// NewAccessID produces the identifier used as the JWT jti and marker key.
func NewAccessID() string {
	return uuid.NewString()
}
