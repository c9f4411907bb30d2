package v1

import (
	"net/http"

	"impulse-vlsi-backend/config"
	"impulse-vlsi-backend/internal/delivery/http/middleware"
	"impulse-vlsi-backend/internal/delivery/http/response"
	"impulse-vlsi-backend/internal/domain"
	"impulse-vlsi-backend/pkg/apperror"
	"impulse-vlsi-backend/pkg/ratelimit"
	"impulse-vlsi-backend/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	SubmissionUC   domain.SubmissionUsecase
	HealthUC       domain.HealthUsecase
	Limiters       map[domain.FormKind]ratelimit.Limiter
	SecurityLogger *security.SecurityLogger
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL, deps.Config.IsProduction())) // CORS must be first!
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.IsProduction()))
	r.Use(middleware.ErrorHandler())

	r.NoMethod(func(c *gin.Context) {
		c.Error(apperror.MethodNotAllowed())
	})
	r.NoRoute(func(c *gin.Context) {
		c.Error(apperror.NotFound("Not found"))
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Site-facing paths
	NewSubmissionHandler(r.Group("/api"), deps.SubmissionUC, deps.Limiters, deps.SecurityLogger)

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		status := deps.HealthUC.Check(c.Request.Context())
		if status.Status != "ok" {
			response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	NewSubmissionHandler(v1, deps.SubmissionUC, deps.Limiters, deps.SecurityLogger)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
