//go:build integration

package router

// End-to-end tests against a real Postgres via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"personas/internal/config"
	"personas/internal/dto"
	"personas/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresRouter(t *testing.T) *gin.Engine {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("personas_test"),
		tcPostgres.WithUsername("personas"),
		tcPostgres.WithPassword("personas"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Port:              8000,
		Env:               "test",
		DBDriver:          config.DriverPostgres,
		DatabaseURL:       pgURL,
		DBMaxOpenConns:    5,
		DBMaxIdleConns:    2,
		DBConnMaxIdleTime: time.Minute,
		DBLogLevel:        "silent",
	}
	db, err := infra.NewDatabase(cfg)
	require.NoError(t, err)
	require.NoError(t, infra.EnsureSchema(db))
	require.NoError(t, infra.EnsureSchema(db)) // idempotent on Postgres too
	t.Cleanup(func() { _ = infra.Close(db) })

	return New(cfg, db)
}

func TestPostgres_CicloCompleto(t *testing.T) {
	r := setupPostgresRouter(t)

	juan := crear(t, r, "Juan", "Lopez", 40)
	ana := crear(t, r, "Ana", "Juarez", 35)
	crear(t, r, "Pedro", "Gomez", 0)
	crear(t, r, "Luz", "Mar", 150)
	crear(t, r, "Sol", "Rio", 9)

	w := do(t, r, http.MethodGet, "/personas/?skip=2&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[[]dto.PersonaResponse](t, w)
	require.Len(t, page, 2)
	assert.Equal(t, "Pedro", page[0].Nombre)
	assert.Equal(t, "Luz", page[1].Nombre)

	w = do(t, r, http.MethodGet, "/personas/search/?nombre=juan", nil)
	assert.Equal(t, []dto.PersonaResponse{juan}, decode[[]dto.PersonaResponse](t, w))

	w = do(t, r, http.MethodPut, fmt.Sprintf("/personas/%d", ana.ID), map[string]any{"edad": 36})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.PersonaResponse{ID: ana.ID, Nombre: "Ana", Apellido: "Juarez", Edad: 36}, decode[dto.PersonaResponse](t, w))

	w = do(t, r, http.MethodDelete, fmt.Sprintf("/personas/%d", juan.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, r, http.MethodDelete, fmt.Sprintf("/personas/%d", juan.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
