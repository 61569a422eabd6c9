package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Dulceria-api/internal/application/auth"
	"github.com/jhoicas/Dulceria-api/internal/application/dto"
	"github.com/jhoicas/Dulceria-api/internal/application/sweets"
	"github.com/jhoicas/Dulceria-api/internal/domain/entity"
	"github.com/jhoicas/Dulceria-api/internal/infrastructure/kv"
	"github.com/jhoicas/Dulceria-api/internal/infrastructure/localstore"
	apphttp "github.com/jhoicas/Dulceria-api/internal/interfaces/http"
	"github.com/jhoicas/Dulceria-api/pkg/password"
)

type stubReport struct{}

func (stubReport) GenerateInventoryReport(context.Context, []*entity.Sweet) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}

// newTestAPI monta el router completo sobre un store en memoria sembrado.
func newTestAPI(t *testing.T) *fiber.App {
	t.Helper()
	hasher := password.Hasher{Cost: bcrypt.MinCost}
	store := localstore.New(kv.NewMemory())
	require.NoError(t, localstore.NewSeeder(store, "", hasher).Initialize(context.Background()))

	tokens := auth.NewJWTIssuer(auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    auth.NewAuthUseCase(localstore.NewUserRepository(store), tokens, hasher, zerolog.Nop()),
		SweetUC:   sweets.NewSweetUseCase(localstore.NewSweetRepository(store), zerolog.Nop()),
		ReportGen: stubReport{},
		JWTSecret: testJWTSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func login(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: username, Password: "password123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[dto.AuthResponse](t, resp).Token
}

func TestAPI_LoginInvalido(t *testing.T) {
	app := newTestAPI(t)
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "admin", Password: "x"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", decode[dto.ErrorResponse](t, resp).Code)
}

func TestAPI_RegistroYDuplicado(t *testing.T) {
	app := newTestAPI(t)
	in := dto.RegisterRequest{Username: "candyAdmin", Password: "secret"}

	resp := call(t, app, http.MethodPost, "/api/auth/register", "", in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decode[dto.AuthResponse](t, resp)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
	assert.NotEmpty(t, out.Token)

	resp = call(t, app, http.MethodPost, "/api/auth/register", "", in)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "USERNAME_EXISTS", decode[dto.ErrorResponse](t, resp).Code)
}

func TestAPI_Me(t *testing.T) {
	app := newTestAPI(t)
	resp := call(t, app, http.MethodGet, "/api/auth/me", login(t, app, "user"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := decode[entity.PublicUser](t, resp)
	assert.Equal(t, "user1", me.ID)
	assert.Equal(t, entity.RoleUser, me.Role)
}

func TestAPI_CatalogoRequiereToken(t *testing.T) {
	resp := call(t, newTestAPI(t), http.MethodGet, "/api/sweets", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_ListarYFiltrar(t *testing.T) {
	app := newTestAPI(t)
	token := login(t, app, "user")

	list := decode[dto.SweetListResponse](t, call(t, app, http.MethodGet, "/api/sweets", token, nil))
	assert.Equal(t, 4, list.Total)

	list = decode[dto.SweetListResponse](t, call(t, app, http.MethodGet, "/api/sweets?search=worms&category=Gummies", token, nil))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Sour Gummy Worms", list.Items[0].Name)
	assert.True(t, list.Items[0].OutOfStock)

	cats := decode[[]string](t, call(t, app, http.MethodGet, "/api/sweets/categories", token, nil))
	assert.Len(t, cats, 4)
}

func TestAPI_GetByIDInexistente(t *testing.T) {
	app := newTestAPI(t)
	resp := call(t, app, http.MethodGet, "/api/sweets/nope", login(t, app, "user"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_CompraYStockInsuficiente(t *testing.T) {
	app := newTestAPI(t)
	token := login(t, app, "user")

	resp := call(t, app, http.MethodPost, "/api/sweets/2/purchase", token, dto.StockRequest{Quantity: 5})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 15, decode[dto.SweetResponse](t, resp).Quantity)

	resp = call(t, app, http.MethodPost, "/api/sweets/2/purchase", token, dto.StockRequest{Quantity: 16})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", decode[dto.ErrorResponse](t, resp).Code)

	resp = call(t, app, http.MethodPost, "/api/sweets/2/purchase", token, dto.StockRequest{Quantity: 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/sweets/404/purchase", token, dto.StockRequest{Quantity: 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_OperacionesAdminBloqueadasParaUsuario(t *testing.T) {
	app := newTestAPI(t)
	token := login(t, app, "user")

	cases := []struct{ method, path string }{
		{http.MethodPost, "/api/sweets"},
		{http.MethodPut, "/api/sweets/1"},
		{http.MethodDelete, "/api/sweets/1"},
		{http.MethodPost, "/api/sweets/1/restock"},
		{http.MethodGet, "/api/sweets/report.pdf"},
	}
	for _, tc := range cases {
		resp := call(t, app, tc.method, tc.path, token, map[string]int{"quantity": 1})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, tc.method+" "+tc.path)
		resp.Body.Close()
	}
}

func TestAPI_AdminGestionaCatalogo(t *testing.T) {
	app := newTestAPI(t)
	token := login(t, app, "admin")

	resp := call(t, app, http.MethodPost, "/api/sweets", token, map[string]any{
		"name": "Cotton Candy", "category": "Spun Sugar", "price": "4.75", "quantity": 8,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.SweetResponse](t, resp)
	assert.True(t, created.LowStock)

	resp = call(t, app, http.MethodPut, "/api/sweets/"+created.ID, token, map[string]any{"quantity": 30})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 30, decode[dto.SweetResponse](t, resp).Quantity)

	resp = call(t, app, http.MethodPut, "/api/sweets/"+created.ID, token, map[string]any{"quantity": -1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/sweets/3/restock", token, dto.StockRequest{Quantity: 5})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, decode[dto.SweetResponse](t, resp).Quantity)

	resp = call(t, app, http.MethodPost, "/api/sweets/3/restock", token, dto.StockRequest{Quantity: 2147483647})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "el stock no puede desbordar")

	resp = call(t, app, http.MethodPost, "/api/sweets", token, map[string]any{
		"name": "Fudge", "price": "3.999", "quantity": 1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "precio con más de dos decimales")

	resp = call(t, app, http.MethodDelete, "/api/sweets/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = call(t, app, http.MethodDelete, "/api/sweets/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode, "borrar un ID ausente también es 204")

	resp = call(t, app, http.MethodGet, "/api/sweets/report.pdf", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	resp.Body.Close()
}
