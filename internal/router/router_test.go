package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"personas/internal/config"
	"personas/internal/dto"
	"personas/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Port:              8000,
		Env:               "test",
		DBDriver:          config.DriverSQLite,
		DatabaseURL:       filepath.Join(t.TempDir(), "router.db"),
		DBMaxOpenConns:    4,
		DBMaxIdleConns:    1,
		DBConnMaxIdleTime: time.Minute,
		DBLogLevel:        "silent",
	}
	db, err := infra.NewDatabase(cfg)
	require.NoError(t, err)
	require.NoError(t, infra.EnsureSchema(db))
	t.Cleanup(func() { _ = infra.Close(db) })
	return New(cfg, db)
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func crear(t *testing.T, r http.Handler, nombre, apellido string, edad int) dto.PersonaResponse {
	t.Helper()
	w := do(t, r, http.MethodPost, "/personas/", map[string]any{"nombre": nombre, "apellido": apellido, "edad": edad})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[dto.PersonaResponse](t, w)
}

// ── Personas ─────────────────────────────────────────────────────────────────

func TestPersonas_RoundTrip(t *testing.T) {
	r := setupRouter(t)

	created := crear(t, r, "Ana", "Diaz", 30)
	assert.NotZero(t, created.ID)

	w := do(t, r, http.MethodGet, fmt.Sprintf("/personas/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.PersonaResponse{ID: created.ID, Nombre: "Ana", Apellido: "Diaz", Edad: 30}, decode[dto.PersonaResponse](t, w))
}

func TestPersonas_CrearValidacion(t *testing.T) {
	r := setupRouter(t)

	for _, edad := range []int{-1, 151} {
		w := do(t, r, http.MethodPost, "/personas/", map[string]any{"nombre": "Ana", "apellido": "Diaz", "edad": edad})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "edad %d", edad)
		assert.Contains(t, w.Body.String(), `"edad"`)
	}
	for _, edad := range []int{0, 150} {
		w := do(t, r, http.MethodPost, "/personas/", map[string]any{"nombre": "Ana", "apellido": "Diaz", "edad": edad})
		assert.Equal(t, http.StatusCreated, w.Code, "edad %d", edad)
	}

	w := do(t, r, http.MethodPost, "/personas/", map[string]any{"nombre": "", "apellido": "Diaz", "edad": 3})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, r, http.MethodPost, "/personas/", map[string]any{"nombre": "Ana", "apellido": "Diaz"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, r, http.MethodPost, "/personas/", `{"nombre": "Ana",`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPersonas_ObtenerNoExiste(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodGet, "/personas/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Persona con id 999 no encontrada"}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/personas/-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Persona con id -1 no encontrada"}`, w.Body.String())

	w = do(t, r, http.MethodDelete, "/paises/0", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Pais con id 0 no encontrado"}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/personas/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPersonas_ActualizacionParcial(t *testing.T) {
	r := setupRouter(t)
	p := crear(t, r, "Ana", "Diaz", 30)

	w := do(t, r, http.MethodPut, fmt.Sprintf("/personas/%d", p.ID), map[string]any{"edad": 31})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.PersonaResponse{ID: p.ID, Nombre: "Ana", Apellido: "Diaz", Edad: 31}, decode[dto.PersonaResponse](t, w))

	w = do(t, r, http.MethodGet, fmt.Sprintf("/personas/%d", p.ID), nil)
	assert.Equal(t, dto.PersonaResponse{ID: p.ID, Nombre: "Ana", Apellido: "Diaz", Edad: 31}, decode[dto.PersonaResponse](t, w))

	w = do(t, r, http.MethodPut, fmt.Sprintf("/personas/%d", p.ID), map[string]any{"edad": 151})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, r, http.MethodPut, "/personas/4242", map[string]any{"edad": 20})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPersonas_EliminarIdempotente(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodDelete, "/personas/55", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(t, r, http.MethodDelete, "/personas/55", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	p := crear(t, r, "Ana", "Diaz", 30)
	w = do(t, r, http.MethodDelete, fmt.Sprintf("/personas/%d", p.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(t, r, http.MethodDelete, fmt.Sprintf("/personas/%d", p.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPersonas_Paginacion(t *testing.T) {
	r := setupRouter(t)
	var ids []uint
	for i := 1; i <= 5; i++ {
		ids = append(ids, crear(t, r, fmt.Sprintf("P%d", i), "X", i).ID)
	}

	w := do(t, r, http.MethodGet, "/personas/?skip=2&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[[]dto.PersonaResponse](t, w)
	require.Len(t, page, 2)
	assert.Equal(t, ids[2], page[0].ID)
	assert.Equal(t, ids[3], page[1].ID)

	w = do(t, r, http.MethodGet, "/personas/", nil)
	assert.Len(t, decode[[]dto.PersonaResponse](t, w), 5)

	w = do(t, r, http.MethodGet, "/personas/?skip=50", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	for _, q := range []string{"skip=-1", "limit=0", "limit=1001", "limit=abc"} {
		w = do(t, r, http.MethodGet, "/personas/?"+q, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, q)
	}
}

func TestPersonas_Buscar(t *testing.T) {
	r := setupRouter(t)
	juan := crear(t, r, "Juan", "Lopez", 40)
	ana := crear(t, r, "Ana", "Juarez", 35)
	crear(t, r, "Pedro", "Gomez", 22)

	w := do(t, r, http.MethodGet, "/personas/search/?nombre=ju", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []dto.PersonaResponse{juan, ana}, decode[[]dto.PersonaResponse](t, w))

	w = do(t, r, http.MethodGet, "/personas/search/?nombre=juan", nil)
	assert.Equal(t, []dto.PersonaResponse{juan}, decode[[]dto.PersonaResponse](t, w))

	w = do(t, r, http.MethodGet, "/personas/search/?nombre=xy", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(t, r, http.MethodGet, "/personas/search/?nombre=j", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	w = do(t, r, http.MethodGet, "/personas/search/", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// ── Paises ───────────────────────────────────────────────────────────────────

func TestPaises_CRUD(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodPost, "/paises/", map[string]any{"nombre": "Argentina"})
	require.Equal(t, http.StatusCreated, w.Code)
	ar := decode[dto.PaisResponse](t, w)

	w = do(t, r, http.MethodPut, fmt.Sprintf("/paises/%d", ar.ID), map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ar, decode[dto.PaisResponse](t, w))

	w = do(t, r, http.MethodGet, "/paises/search/?nombre=GEN", nil)
	assert.Equal(t, []dto.PaisResponse{ar}, decode[[]dto.PaisResponse](t, w))

	w = do(t, r, http.MethodDelete, fmt.Sprintf("/paises/%d", ar.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/paises/%d", ar.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ── Root / health ────────────────────────────────────────────────────────────

func TestRootYHealth(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"1.0.0"`)

	w = do(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"db":"connected"}`, w.Body.String())
}

func TestCORS_CabecerasEnRespuesta(t *testing.T) {
	r := setupRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/personas/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestSwaggerDoc(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Personas CRUD API")
	assert.Contains(t, w.Body.String(), "/personas/search/")
}
