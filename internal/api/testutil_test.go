package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/recetario/backend/internal/kvstore"
	"github.com/recetario/backend/internal/models"
	"github.com/recetario/backend/internal/service"
)

type testEnv struct {
	router  *gin.Engine
	catalog *service.CatalogService
	auth    *service.AuthService
	store   *kvstore.MemoryStore
}

// newTestEnv wires the full route table against an in-memory KV store and an
// in-memory identity database. Image upload and rate limiting stay disabled.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	store := kvstore.NewMemoryStore()
	catalog := service.NewCatalogService(store)
	auth := service.NewAuthService(db, "test-secret")

	router := gin.New()
	RegisterRoutes(router, catalog, auth, nil, nil, nil)

	return &testEnv{router: router, catalog: catalog, auth: auth, store: store}
}

// loginAs creates the user if needed and returns a bearer token for it.
func (e *testEnv) loginAs(t *testing.T, name, email, role string) string {
	t.Helper()
	_, err := e.auth.Signup(context.Background(), name, email, "secreto123", role)
	if err != nil {
		require.ErrorIs(t, err, service.ErrEmailTaken)
	}
	token, _, err := e.auth.Login(context.Background(), email, "secreto123")
	require.NoError(t, err)
	return token
}

func (e *testEnv) adminToken(t *testing.T) string {
	return e.loginAs(t, "Admin", "admin@example.com", "admin")
}

func (e *testEnv) userToken(t *testing.T) string {
	return e.loginAs(t, "Ana", "ana@example.com", "")
}

// do issues a JSON request against the router. token may be empty.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// createTestRecipe inserts a recipe through the service layer and returns it.
func (e *testEnv) createTestRecipe(t *testing.T) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		Title:       "Sopa de Prueba",
		Description: "Una sopa para las pruebas",
		Category:    "Sopas",
		Difficulty:  "Fácil",
		Image:       "https://example.com/sopa.jpg",
		Ingredients: []models.Ingredient{
			{Name: "Tomate", Quantity: 6, Unit: "unidades"},
		},
		Instructions: []string{"Cocer los tomates", "Triturar"},
		PrepTime:     "10 min",
		CookTime:     "20 min",
		Servings:     4,
	}
	created, err := e.catalog.CreateRecipe(context.Background(), recipe)
	require.NoError(t, err)
	return created
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}
