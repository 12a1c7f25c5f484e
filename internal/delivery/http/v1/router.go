package v1

import (
	"github.com/FelipeFerreiradv/legal-lead-page-pro/config"
	"github.com/FelipeFerreiradv/legal-lead-page-pro/internal/delivery/http/middleware"
	"github.com/FelipeFerreiradv/legal-lead-page-pro/internal/delivery/http/response"
	"github.com/FelipeFerreiradv/legal-lead-page-pro/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	// Liveness check, unrelated to the submission pipeline
	r.GET("/health", HealthCheck)

	// Public routes
	api := r.Group("/api")
	NewContactHandler(api, deps.ContactUC)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HealthCheck godoc
// @Summary      Liveness check
// @Produce      json
// @Success      200  {object}  response.Body
// @Router       /health [get]
func HealthCheck(c *gin.Context) {
	response.OK(c)
}
