package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ai-website-generator/backend/internal/api/http/apierror"
	"github.com/ai-website-generator/backend/internal/api/http/middleware"
	"github.com/ai-website-generator/backend/internal/projects/domain"
)

const (
	msgInvalidID = "Invalid project ID format"
	msgNotFound  = "Project not found"
	msgDeleted   = "Project deleted successfully"

	promptLogPrefix = 50
)

func (h *Handler) create(c *gin.Context) {
	var req saveProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fields := bindErrorFields(err)
		h.log.Warn("rejected project body", zap.Any("details", fields), h.requestID(c))
		apierror.Validation(c, fields)
		return
	}

	h.log.Info("saving project", zap.String("prompt", truncate(req.Prompt, promptLogPrefix)), h.requestID(c))

	p, err := h.svc.Create(c.Request.Context(), domain.CreateProjectInput{
		Prompt: req.Prompt,
		Code:   req.Code,
	})
	if err != nil {
		h.fail(c, "save project", err)
		return
	}

	h.log.Info("project saved", zap.String("id", p.ID), h.requestID(c))
	c.JSON(http.StatusCreated, toResponse(p))
}

func (h *Handler) list(c *gin.Context) {
	// malformed limits fall through as 0 and are normalized by the service
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, err := h.svc.List(c.Request.Context(), limit)
	if err != nil {
		h.fail(c, "list projects", err)
		return
	}

	out := make([]ProjectResponse, 0, len(items))
	for i := range items {
		out = append(out, toResponse(&items[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	if err := domain.ValidateID(id); err != nil {
		apierror.Abort(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get project", err)
		return
	}
	c.JSON(http.StatusOK, toResponse(p))
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	if err := domain.ValidateID(id); err != nil {
		apierror.Abort(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete project", err)
		return
	}

	h.log.Info("project deleted", zap.String("id", id), h.requestID(c))
	c.JSON(http.StatusOK, DeleteResponse{Message: msgDeleted, ID: id})
}

// fail maps a service error onto the error taxonomy. Only internal failures are
// logged at error level, with their full cause.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.log.Warn("validation failed", zap.String("op", op), zap.Any("details", verr.Fields), h.requestID(c))
		apierror.Validation(c, verr.Fields)
	case errors.Is(err, domain.ErrInvalidID):
		apierror.Abort(c, http.StatusBadRequest, msgInvalidID)
	case errors.Is(err, domain.ErrNotFound):
		apierror.Abort(c, http.StatusNotFound, msgNotFound)
	default:
		h.log.Error(op+" failed", zap.Error(err), zap.String("id", c.Param("id")), h.requestID(c))
		apierror.Internal(c)
	}
}

func (h *Handler) requestID(c *gin.Context) zap.Field {
	return zap.String("request_id", middleware.GetRequestID(c.Request.Context()))
}

// bindErrorFields describes a body that could not be decoded at all.
func bindErrorFields(err error) []domain.FieldError {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return []domain.FieldError{{Field: "body", Message: "field required"}}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return []domain.FieldError{{Field: typeErr.Field, Message: "expected " + typeErr.Type.String() + ", got " + typeErr.Value}}
	default:
		return []domain.FieldError{{Field: "body", Message: "invalid JSON body"}}
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
