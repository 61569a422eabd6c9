package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "v2", cfg.Store.SeedVersion)
	assert.Equal(t, time.Duration(0), cfg.Store.Latency)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 60, cfg.JWT.Expiration)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "Redis")
	v.Set("STORE_LATENCY_MS", "300")
	v.Set("REDIS_DB", 2)
	v.Set("STORE_SEED_VERSION", "v3")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, DriverRedis, cfg.Store.Driver)
	assert.Equal(t, 300*time.Millisecond, cfg.Store.Latency)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "v3", cfg.Store.SeedVersion)
}

func TestFromViper_DriverInvalido(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "indexeddb")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "dulceria", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/dulceria?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
