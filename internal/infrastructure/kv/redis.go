package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Dulceria-api/internal/domain"
)

var _ Medium = (*Redis)(nil)

const (
	defaultRedisTimeout = 5 * time.Second
	maxUpdateAttempts   = 64
	keyPrefix           = "dulceria:"
)

// RedisConfig parámetros de conexión a Redis.
type RedisConfig struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// ConnectRedis inicializa el cliente y valida la conexión con un ping.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRedisTimeout
	}
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// Redis medio compartido entre procesos. Update usa concurrencia optimista
// (WATCH/MULTI/EXEC) y reintenta si otra escritura gana la carrera.
type Redis struct {
	client *redis.Client
}

// NewRedis envuelve un cliente ya conectado.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Get devuelve el valor de key.
func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

// Set escribe key sin expiración.
func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete elimina key si existe.
func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Update aplica fn con compare-and-swap sobre key.
func (r *Redis) Update(ctx context.Context, key string, fn UpdateFunc) error {
	k := keyPrefix + key
	txf := func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, k).Result()
		ok := true
		if errors.Is(err, redis.Nil) {
			cur, ok = "", false
		} else if err != nil {
			return fmt.Errorf("redis get %s: %w", key, err)
		}
		next, err := fn(cur, ok)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, next, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, k)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("redis update %s: %w", key, domain.ErrConflict)
}

// Close cierra el cliente.
func (r *Redis) Close() error {
	return r.client.Close()
}
