package builder

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/shared/server/middleware"
	"resume-builder-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the generation service.
type Handler struct {
	Svc         *Service
	ResumesRepo resumes.Repo
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, resumesRepo resumes.Repo) *Handler {
	return &Handler{Svc: svc, ResumesRepo: resumesRepo}
}

// RegisterRoutes attaches resume-generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/generate", h.generate)
	rg.POST("/resumes/preview", h.preview)
	rg.GET("/resumes", h.list)
}

type generateRequest struct {
	TemplateID     string `json:"templateId"`
	Strategy       string `json:"strategy,omitempty"`
	TargetIndustry string `json:"targetIndustry,omitempty"`
}

type generateResponse struct {
	Resume    resumes.Resume `json:"resume"`
	Selection Selection      `json:"selection"`
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.TemplateID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "templateId is required", nil)
		return
	}
	c.Set("templateId", req.TemplateID)

	resume, selection, err := h.Svc.Generate(c.Request.Context(), userID, req.TemplateID, GenerateOptions{
		StrategyOverride: req.Strategy,
		TargetIndustry:   req.TargetIndustry,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrProfileNotAvailable):
			respond.Error(c, http.StatusPreconditionFailed, "profile_not_available", err.Error(), nil)
		case errors.Is(err, ErrTemplateNotFound):
			respond.Error(c, http.StatusNotFound, "template_not_found", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to generate resume", nil)
		}
		return
	}
	c.Set("strategy", selection.Name)

	respond.JSON(c, http.StatusCreated, generateResponse{Resume: resume, Selection: selection})
}

type previewResponse struct {
	Draft     resumes.BuilderData `json:"draft"`
	Selection Selection           `json:"selection"`
}

func (h *Handler) preview(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.TemplateID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "templateId is required", nil)
		return
	}

	draft, selection, err := h.Svc.Preview(c.Request.Context(), userID, req.TemplateID, GenerateOptions{
		StrategyOverride: req.Strategy,
		TargetIndustry:   req.TargetIndustry,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrProfileNotAvailable):
			respond.Error(c, http.StatusPreconditionFailed, "profile_not_available", err.Error(), nil)
		case errors.Is(err, ErrTemplateNotFound):
			respond.Error(c, http.StatusNotFound, "template_not_found", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to preview resume", nil)
		}
		return
	}

	respond.OK(c, previewResponse{Draft: draft, Selection: selection})
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	list, err := h.ResumesRepo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to list resumes", nil)
		return
	}
	respond.OK(c, gin.H{"resumes": list})
}
