package templates

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/profiles"
	"resume-builder-backend/internal/shared/server/middleware"
	"resume-builder-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the template catalog and scorer.
type Handler struct {
	Repo     Repo
	Profiles profiles.Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo, profileRepo profiles.Repo) *Handler {
	return &Handler{Repo: repo, Profiles: profileRepo}
}

// RegisterRoutes attaches template routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", h.list)
	rg.GET("/templates/recommendations", h.recommendations)
}

type templateSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	StyleTags   []string `json:"styleTags"`
	ATSFriendly bool     `json:"atsFriendly"`
}

func (h *Handler) list(c *gin.Context) {
	catalog, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to list templates", nil)
		return
	}
	out := make([]templateSummary, 0, len(catalog))
	for _, t := range catalog {
		out = append(out, templateSummary{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			StyleTags:   t.StyleTags,
			ATSFriendly: t.ATSFriendly,
		})
	}
	respond.OK(c, gin.H{"templates": out})
}

func (h *Handler) recommendations(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	profile, err := h.Profiles.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, profiles.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to load profile", nil)
		return
	}

	catalog, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to list templates", nil)
		return
	}

	respond.OK(c, gin.H{"recommendations": Recommend(profile, catalog)})
}
