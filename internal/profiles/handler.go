package profiles

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/shared/server/middleware"
	"resume-builder-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the profile repo.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.get)
	rg.PUT("/profile", h.upsert)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	profile, err := h.Repo.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to load profile", nil)
		return
	}
	respond.OK(c, profile)
}

func (h *Handler) upsert(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var profile Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	profile.UserID = userID
	profile.UpdatedAt = time.Now().UTC()

	if err := h.Repo.Upsert(c.Request.Context(), profile); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to save profile", nil)
		return
	}
	respond.OK(c, profile)
}
