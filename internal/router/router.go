package router

import (
	"personas/docs"
	"personas/internal/config"
	"personas/internal/handler"
	"personas/internal/middleware"
	"personas/internal/repository"
	"personas/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Repositories ─────────────────────────────────────────────────────────
	personaRepo := repository.NewPersonaRepository(db)
	paisRepo := repository.NewPaisRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	personaSvc := service.NewPersonaService(personaRepo)
	paisSvc := service.NewPaisService(paisRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	personasH := handler.NewPersonasHandler(personaSvc)
	paisesH := handler.NewPaisesHandler(paisSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/", handler.Root(docs.SwaggerInfo.Title, docs.SwaggerInfo.Description, docs.SwaggerInfo.Version))
	r.GET("/health", handler.Health(db))

	personas := r.Group("/personas")
	{
		personas.POST("/", personasH.Crear)
		personas.GET("/", personasH.Listar)
		personas.GET("/search/", personasH.Buscar)
		personas.GET("/:id", personasH.ObtenerPorID)
		personas.PUT("/:id", personasH.Actualizar)
		personas.DELETE("/:id", personasH.Eliminar)
	}

	paises := r.Group("/paises")
	{
		paises.POST("/", paisesH.Crear)
		paises.GET("/", paisesH.Listar)
		paises.GET("/search/", paisesH.Buscar)
		paises.GET("/:id", paisesH.ObtenerPorID)
		paises.PUT("/:id", paisesH.Actualizar)
		paises.DELETE("/:id", paisesH.Eliminar)
	}

	// Swagger UI, outside production only
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
