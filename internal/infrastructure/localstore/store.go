// Package localstore implementa los repositorios de la tienda sobre un kv.Medium:
// cada colección es un arreglo JSON guardado en una sola entrada y toda escritura
// es un read-modify-write completo de la colección, ejecutado de forma atómica.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/Dulceria-api/internal/domain"
	"github.com/jhoicas/Dulceria-api/internal/infrastructure/kv"
)

// Nombres de las entradas en el medio durable.
const (
	KeyUsers      = "sr_users"
	KeySweets     = "sr_sweets"
	KeyInitPrefix = "sr_init_"
	KeyAuthUser   = "sr_auth_user"
	KeyAuthToken  = "sr_auth_token"
)

// Store agrupa el medio y la latencia simulada compartida por los repositorios.
type Store struct {
	medium  kv.Medium
	latency time.Duration
}

// Option configura el Store.
type Option func(*Store)

// WithLatency simula la ida y vuelta de red antes de cada operación (excepto GetByID).
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// New construye el Store sobre el medio dado.
func New(medium kv.Medium, opts ...Option) *Store {
	s := &Store{medium: medium}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Medium devuelve el medio subyacente.
func (s *Store) Medium() kv.Medium {
	return s.medium
}

// wait aplica la latencia simulada respetando la cancelación del contexto.
func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// decodeCollection decodifica una colección; una entrada ausente es una colección vacía.
func decodeCollection[T any](key, raw string, ok bool) ([]*T, error) {
	if !ok || raw == "" {
		return []*T{}, nil
	}
	var items []*T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStoreCorrupt, key, err)
	}
	if items == nil {
		items = []*T{}
	}
	return items, nil
}

func encodeCollection[T any](key string, items []*T) (string, error) {
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", key, err)
	}
	return string(b), nil
}

// load lee y decodifica una colección completa.
func load[T any](ctx context.Context, m kv.Medium, key string) ([]*T, error) {
	raw, ok, err := m.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return decodeCollection[T](key, raw, ok)
}

// mutate ejecuta un read-modify-write atómico de la colección key.
func mutate[T any](ctx context.Context, m kv.Medium, key string, fn func(items []*T) ([]*T, error)) error {
	return m.Update(ctx, key, func(raw string, ok bool) (string, error) {
		items, err := decodeCollection[T](key, raw, ok)
		if err != nil {
			return "", err
		}
		items, err = fn(items)
		if err != nil {
			return "", err
		}
		return encodeCollection(key, items)
	})
}
