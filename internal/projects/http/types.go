package http

import (
	"go.uber.org/zap"

	"github.com/ai-website-generator/backend/internal/projects/domain"
	"github.com/ai-website-generator/backend/internal/projects/service"
)

// TimeLayout is the ISO-8601 rendering of created_at on the wire.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
	log *zap.Logger
}

func New(svc *service.ProjectService, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, log: log.Named("projects")}
}

type saveProjectReq struct {
	Prompt string               `json:"prompt"`
	Code   domain.CodeStructure `json:"code"`
}

// ProjectResponse is the wire form of a project.
type ProjectResponse struct {
	ID        string               `json:"id"`
	Prompt    string               `json:"prompt"`
	Code      domain.CodeStructure `json:"code"`
	CreatedAt string               `json:"created_at"`
}

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func toResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:        p.ID,
		Prompt:    p.Prompt,
		Code:      p.Code,
		CreatedAt: p.CreatedAt.UTC().Format(TimeLayout),
	}
}
