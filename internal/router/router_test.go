package router_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"adoptme-api/internal/platform/config"
	"adoptme-api/internal/platform/httpclient"
	"adoptme-api/internal/platform/logger"
	"adoptme-api/internal/platform/objectid"
	"adoptme-api/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userBody struct {
	ID        string   `json:"_id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Age       float64  `json:"age"`
	Password  string   `json:"password"`
	Role      string   `json:"role"`
	Pets      []string `json:"pets"`
}

type userEnvelope struct {
	Message string   `json:"message"`
	User    userBody `json:"user"`
}

type errBody struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
}

func newServer(t *testing.T, docs bool) *httpclient.Client {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{Logger: logger.Nop(), DocsEnabled: docs, MockSeed: 1}))
	t.Cleanup(ts.Close)
	return httpclient.New(ts.URL, 5*time.Second)
}

func TestHTTP_EndToEnd_Users(t *testing.T) {
	c := newServer(t, false)
	ctx := context.Background()

	// 1) crear
	var created userEnvelope
	err := c.DoJSON(ctx, http.MethodPost, "/api/users", map[string]any{
		"first_name": "Test",
		"last_name":  "User",
		"email":      "test.user@example.com",
		"age":        25,
		"password":   "testPassword123",
		"role":       "user",
	}, &created)
	require.NoError(t, err)
	assert.Equal(t, "Usuario creado con éxito", created.Message)
	assert.True(t, objectid.IsValid(created.User.ID))
	assert.NotNil(t, created.User.Pets)
	assert.Empty(t, created.User.Pets)

	// 2) id mal formado
	res, err := c.Do(ctx, http.MethodGet, "/api/users/invalid-id-format", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	var eb errBody
	require.NoError(t, res.Decode(&eb))
	assert.Equal(t, "El ID proporcionado no es un ObjectId válido.", eb.Message)

	// 3) id bien formado que no existe
	res, err = c.Do(ctx, http.MethodGet, "/api/users/"+objectid.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	eb = errBody{}
	require.NoError(t, res.Decode(&eb))
	assert.Equal(t, "Usuario no encontrado.", eb.Message)

	// 4) update parcial
	var updated userEnvelope
	require.NoError(t, c.DoJSON(ctx, http.MethodPut, "/api/users/"+created.User.ID, map[string]any{"age": 26}, &updated))
	assert.Equal(t, float64(26), updated.User.Age)
	assert.Equal(t, "test.user@example.com", updated.User.Email)

	// 5) email duplicado => 500 genérico
	err = c.DoJSON(ctx, http.MethodPost, "/api/users", map[string]any{
		"first_name": "Otro",
		"last_name":  "User",
		"email":      "test.user@example.com",
		"age":        30,
		"password":   "x",
	}, nil)
	var httpErr *httpclient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)

	// 6) delete + read => 404
	require.NoError(t, c.DoJSON(ctx, http.MethodDelete, "/api/users/"+created.User.ID, nil, nil))
	res, err = c.Do(ctx, http.MethodGet, "/api/users/"+created.User.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestHTTP_EndToEnd_PetsAndMocks(t *testing.T) {
	c := newServer(t, false)
	ctx := context.Background()

	var pets []map[string]any
	require.NoError(t, c.DoJSON(ctx, http.MethodGet, "/api/mocks/mockingpets?count=5", nil, &pets))
	require.Len(t, pets, 5)

	require.NoError(t, c.DoJSON(ctx, http.MethodPost, "/api/mocks/generateData", map[string]any{"users": 2, "pets": 3}, nil))

	var stored []map[string]any
	require.NoError(t, c.DoJSON(ctx, http.MethodGet, "/api/pets", nil, &stored))
	assert.Len(t, stored, 3)

	var us []map[string]any
	require.NoError(t, c.DoJSON(ctx, http.MethodGet, "/api/users", nil, &us))
	assert.Len(t, us, 2)

	var created struct {
		Message string         `json:"message"`
		Pet     map[string]any `json:"pet"`
	}
	require.NoError(t, c.DoJSON(ctx, http.MethodPost, "/api/pets", map[string]any{
		"name":      "Milo",
		"species":   "dog",
		"birthDate": "2020-05-01",
		"owner":     us[0]["_id"],
	}, &created))
	assert.Equal(t, "Milo", created.Pet["name"])
	assert.Equal(t, us[0]["_id"], created.Pet["owner"])
	assert.Equal(t, false, created.Pet["adopted"])
}

func TestHTTP_IDFormat(t *testing.T) {
	c := newServer(t, false)
	ctx := context.Background()

	var created userEnvelope
	require.NoError(t, c.DoJSON(ctx, http.MethodPost, "/api/users", map[string]any{
		"first_name": "Ana",
		"last_name":  "García",
		"email":      "ana@example.com",
		"age":        33,
		"password":   "x",
	}, &created))
	id := created.User.ID

	// hex en mayúsculas es el mismo ObjectId
	var got userBody
	require.NoError(t, c.DoJSON(ctx, http.MethodGet, "/api/users/"+strings.ToUpper(id), nil, &got))
	assert.Equal(t, id, got.ID)

	// espacios alrededor => 400 sin tocar el store
	for _, padded := range []string{"%20" + id, id + "%20"} {
		res, err := c.Do(ctx, http.MethodGet, "/api/users/"+padded, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, padded)
		var eb errBody
		require.NoError(t, res.Decode(&eb))
		assert.Equal(t, "El ID proporcionado no es un ObjectId válido.", eb.Message)
	}
}

func TestHTTP_RootAndHealth(t *testing.T) {
	c := newServer(t, false)
	ctx := context.Background()

	res, err := c.Do(ctx, http.MethodGet, "/", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, router.LivenessMessage, string(res.Body))

	res, err = c.Do(ctx, http.MethodGet, "/health", nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(res.Body))
	assert.NotEmpty(t, res.Header.Get("X-Request-ID"))
}

func TestHTTP_Docs(t *testing.T) {
	ctx := context.Background()

	on := newServer(t, true)
	res, err := on.Do(ctx, http.MethodGet, "/api-docs", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, strings.Contains(string(res.Body), "swagger"), "esperaba la UI de swagger")

	var doc map[string]any
	require.NoError(t, on.DoJSON(ctx, http.MethodGet, "/api-docs/doc.json", nil, &doc))
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/api/users/{userID}")
	assert.Contains(t, paths, "/api/mocks/mockingpets")

	off := newServer(t, false)
	res, err = off.Do(ctx, http.MethodGet, "/api-docs", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestOpenStores_Memory(t *testing.T) {
	cfg := &config.Config{StoreTimeout: time.Second}

	st, err := router.OpenStores(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, config.BackendMemory, st.Backend)
	require.NotNil(t, st.Users)
	require.NotNil(t, st.Pets)
	assert.NoError(t, st.Close(context.Background()))
}

func TestOpenStores_UnreachableMongo(t *testing.T) {
	cfg := &config.Config{
		MongoURL:      "mongodb://127.0.0.1:1/?connectTimeoutMS=200",
		MongoDatabase: "adoptme",
		StoreTimeout:  300 * time.Millisecond,
	}

	_, err := router.OpenStores(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}
