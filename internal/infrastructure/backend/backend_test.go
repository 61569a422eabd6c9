package backend

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Dulceria-api/internal/domain/entity"
	"github.com/jhoicas/Dulceria-api/pkg/config"
	"github.com/jhoicas/Dulceria-api/pkg/password"
)

func TestOpen_SQLiteSiembraYPersiste(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Store: config.StoreConfig{
		Driver:      config.DriverSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "store.db"),
		SeedVersion: "v2",
	}}
	hasher := password.Hasher{Cost: bcrypt.MinCost}

	b, err := Open(ctx, cfg, hasher, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, b.Seeder.Initialize(ctx))
	_, err = b.Sweets.Mutate(ctx, "1", func(s *entity.Sweet) error { s.Quantity = 7; return nil })
	require.NoError(t, err)
	require.NoError(t, b.Close())

	b, err = Open(ctx, cfg, hasher, zerolog.Nop())
	require.NoError(t, err)
	defer b.Close()
	require.NoError(t, b.Seeder.Initialize(ctx))
	s, err := b.Sweets.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 7, s.Quantity, "la semilla no se reaplica en la misma versión")
}

func TestOpen_Memory(t *testing.T) {
	b, err := Open(context.Background(), &config.Config{Store: config.StoreConfig{Driver: config.DriverMemory}},
		password.Hasher{Cost: bcrypt.MinCost}, zerolog.Nop())
	require.NoError(t, err)
	assert.NotNil(t, b.Medium)
	assert.NoError(t, b.Close())
}

func TestOpenMedium_DriverPostgresNoTieneMedio(t *testing.T) {
	_, err := OpenMedium(context.Background(), &config.Config{Store: config.StoreConfig{Driver: config.DriverPostgres}})
	assert.Error(t, err)
}
