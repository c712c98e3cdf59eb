package bootstrap

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "github.com/ai-website-generator/backend/internal/api/http"
	"github.com/ai-website-generator/backend/internal/api/http/apierror"
	"github.com/ai-website-generator/backend/internal/api/http/middleware"
	"github.com/ai-website-generator/backend/internal/api/http/routes"
	"github.com/ai-website-generator/backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName    string
	AllowedOrigins []string
	Projects       service.Store
	DB             httpapi.Pinger
	Log            *zap.Logger
	Metrics        *middleware.Metrics
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	log := dep.Log
	if log == nil {
		log = zap.NewNop()
	}
	metrics := dep.Metrics
	if metrics == nil {
		metrics = middleware.NewMetrics()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(log.Named("http")),
		metrics.Middleware(),
		middleware.Recovery(log),
		cors.New(CORSConfig(dep.AllowedOrigins)),
	)
	r.NoRoute(func(c *gin.Context) {
		apierror.Abort(c, http.StatusNotFound, "Not Found")
	})
	r.NoMethod(func(c *gin.Context) {
		apierror.Abort(c, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.DB)
	healthHandler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	routes.RegisterAPI(r, routes.APIDeps{
		Projects: dep.Projects,
		Log:      log,
	})

	return r
}

// CORSConfig allows the given origins with credentials, every method the API
// serves and the headers the frontend sends.
func CORSConfig(origins []string) cors.Config {
	return cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Language",
			"Authorization", "X-Requested-With", middleware.HeaderRequestID,
		},
		ExposeHeaders:    []string{middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
