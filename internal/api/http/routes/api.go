package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	projectshttp "github.com/ai-website-generator/backend/internal/projects/http"
	"github.com/ai-website-generator/backend/internal/projects/service"
)

type APIDeps struct {
	Projects service.Store
	Log      *zap.Logger
}

// RegisterAPI mounts every /api route.
func RegisterAPI(r gin.IRouter, dep APIDeps) {
	api := r.Group("/api")

	projectService := service.NewProjectService(dep.Projects)
	projectsHandler := projectshttp.New(projectService, dep.Log)
	projectsHandler.Register(api.Group("/projects"))
}
