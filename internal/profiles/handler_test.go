package profiles

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/shared/server/middleware"
)

func newProfileRouter(t *testing.T) (*gin.Engine, *MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := NewMemoryRepo()
	r := gin.New()
	r.Use(middleware.Identity())
	NewHandler(repo).RegisterRoutes(r.Group("/api/v1"))
	return r, repo
}

func TestProfileUpsertAndGetRoundTrip(t *testing.T) {
	router, _ := newProfileRouter(t)

	body := `{"first_name":"Jane","experience_level":"senior","work_experience":"[{\"company\":\"Acme Corp\"}]"}`
	put := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(body))
	put.Header.Set("Content-Type", "application/json")
	put.Header.Set("X-User-Id", "user-1")
	putResp := httptest.NewRecorder()
	router.ServeHTTP(putResp, put)
	if putResp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", putResp.Code, putResp.Body.String())
	}

	get := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	get.Header.Set("X-User-Id", "user-1")
	getResp := httptest.NewRecorder()
	router.ServeHTTP(getResp, get)
	if getResp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", getResp.Code)
	}

	var got Profile
	if err := json.NewDecoder(getResp.Body).Decode(&got); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if got.UserID != "user-1" || got.FirstName != "Jane" {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if recs := got.ExperienceRecords(); len(recs) != 1 || recs[0].Company != "Acme Corp" {
		t.Fatalf("JSON-string list field lost in round trip: %+v", recs)
	}
	if got.UpdatedAt.IsZero() {
		t.Fatalf("updated_at not stamped")
	}
}

func TestProfileGetNotFound(t *testing.T) {
	router, _ := newProfileRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	req.Header.Set("X-User-Id", "ghost")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestProfileUpsertIgnoresBodyUserID(t *testing.T) {
	router, repo := newProfileRouter(t)

	body := `{"user_id":"someone-else","first_name":"Jane"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	if _, err := repo.Get(req.Context(), "someone-else"); err == nil {
		t.Fatalf("body user_id must not be trusted")
	}
	stored, err := repo.Get(req.Context(), "user-1")
	if err != nil || stored.FirstName != "Jane" {
		t.Fatalf("profile not stored under header identity: %v %+v", err, stored)
	}
}
