package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Dulceria-api/internal/application/auth"
	"github.com/jhoicas/Dulceria-api/internal/application/session"
	"github.com/jhoicas/Dulceria-api/internal/application/sweets"
	"github.com/jhoicas/Dulceria-api/internal/domain"
	"github.com/jhoicas/Dulceria-api/internal/infrastructure/kv"
	"github.com/jhoicas/Dulceria-api/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/Dulceria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Dulceria-api/pkg/password"
)

func newTestCLI(t *testing.T) (*cli, *bytes.Buffer) {
	t.Helper()
	hasher := password.Hasher{Cost: bcrypt.MinCost}
	medium := kv.NewMemory()
	store := localstore.New(medium)
	require.NoError(t, localstore.NewSeeder(store, "", hasher).Initialize(context.Background()))

	var out bytes.Buffer
	return &cli{
		auth:    auth.NewAuthUseCase(localstore.NewUserRepository(store), auth.OpaqueIssuer{}, hasher, zerolog.Nop()),
		sweets:  sweets.NewSweetUseCase(localstore.NewSweetRepository(store), zerolog.Nop()),
		session: session.NewManager(localstore.NewSessionRepository(medium)),
		report:  infrapdf.NewMarotoReportGenerator("Dulcería"),
		out:     &out,
	}, &out
}

func TestCLI_SinSesion(t *testing.T) {
	c, _ := newTestCLI(t)
	ctx := context.Background()
	assert.ErrorIs(t, c.run(ctx, []string{"whoami"}), domain.ErrUnauthorized)
	assert.ErrorIs(t, c.run(ctx, []string{"list"}), domain.ErrUnauthorized)
	assert.ErrorIs(t, c.run(ctx, []string{"buy", "1", "1"}), domain.ErrUnauthorized)
	assert.ErrorIs(t, c.run(ctx, []string{}), errUsage)
}

func TestCLI_LoginCompraYLogout(t *testing.T) {
	c, out := newTestCLI(t)
	ctx := context.Background()

	require.NoError(t, c.run(ctx, []string{"login", "user", "password123"}))
	require.NoError(t, c.run(ctx, []string{"whoami"}))
	assert.Contains(t, out.String(), "user (USER) id=user1")

	out.Reset()
	require.NoError(t, c.run(ctx, []string{"list", "--category", "Chocolate"}))
	assert.Contains(t, out.String(), "Dark Truffles")
	assert.NotContains(t, out.String(), "Peppermint Bark")

	out.Reset()
	require.NoError(t, c.run(ctx, []string{"buy", "2", "3"}))
	assert.Contains(t, out.String(), "Dark Truffles: 17 en stock")

	assert.ErrorIs(t, c.run(ctx, []string{"buy", "3", "1"}), domain.ErrInsufficientStock)
	assert.ErrorIs(t, c.run(ctx, []string{"buy", "2", "dos"}), domain.ErrInvalidInput)
	assert.ErrorIs(t, c.run(ctx, []string{"restock", "3", "5"}), domain.ErrForbidden)

	require.NoError(t, c.run(ctx, []string{"logout"}))
	assert.ErrorIs(t, c.run(ctx, []string{"whoami"}), domain.ErrUnauthorized)
}

func TestCLI_AdminReponeYGeneraReporte(t *testing.T) {
	c, out := newTestCLI(t)
	ctx := context.Background()

	require.NoError(t, c.run(ctx, []string{"register", "NewAdminX", "pw"}))
	assert.Contains(t, out.String(), "(ADMIN)")

	out.Reset()
	require.NoError(t, c.run(ctx, []string{"restock", "3", "5"}))
	assert.Contains(t, out.String(), "Sour Gummy Worms: 5 en stock")

	path := filepath.Join(t.TempDir(), "inv.pdf")
	require.NoError(t, c.run(ctx, []string{"report", "--out", path}))
	assert.FileExists(t, path)
}
