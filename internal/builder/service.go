package builder

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"resume-builder-backend/internal/profiles"
	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/shared/telemetry"
	"resume-builder-backend/internal/templates"
)

// Service is the top-level generation entry point: it loads the profile and
// template, selects a strategy, generates a draft, and merges it into any
// existing resume without clobbering user edits.
type Service struct {
	Profiles  profiles.Repo
	Templates templates.Repo
	Resumes   resumes.Repo
	Registry  Registry
}

// GenerateOptions tunes one generation call.
type GenerateOptions struct {
	// StrategyOverride names a registered strategy to use instead of scored
	// selection. Unknown names fall through to scoring.
	StrategyOverride string
	// TargetIndustry overrides the profile's target industry for this call.
	TargetIndustry string
}

// Generate produces and persists a resume for the user and template.
func (s *Service) Generate(ctx context.Context, userID, templateID string, opts GenerateOptions) (resumes.Resume, Selection, error) {
	profile, err := s.Profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, profiles.ErrNotFound) {
			return resumes.Resume{}, Selection{}, ErrProfileNotAvailable
		}
		return resumes.Resume{}, Selection{}, err
	}

	template, err := s.Templates.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, templates.ErrNotFound) {
			return resumes.Resume{}, Selection{}, ErrTemplateNotFound
		}
		return resumes.Resume{}, Selection{}, err
	}

	selection := s.Registry.Select(profile, opts.StrategyOverride)
	draft := Generate(selection.Strategy, profile, template, opts.TargetIndustry)

	now := time.Now().UTC()
	resume, err := s.Resumes.GetByUserAndTemplate(ctx, userID, templateID)
	switch {
	case err == nil:
		resume.Data = MergeIntoExisting(resume.Data, draft, templates.DefaultSentinels)
		resume.UpdatedAt = now
	case errors.Is(err, resumes.ErrNotFound):
		resume = resumes.Resume{
			ID:         uuid.NewString(),
			UserID:     userID,
			TemplateID: templateID,
			Data:       draft,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	default:
		return resumes.Resume{}, Selection{}, err
	}

	if err := s.Resumes.Upsert(ctx, resume); err != nil {
		return resumes.Resume{}, Selection{}, err
	}

	telemetry.Info("resume.generated", map[string]any{
		"user_id":     userID,
		"template_id": templateID,
		"strategy":    selection.Name,
		"confidence":  selection.Confidence,
	})
	return resume, selection, nil
}

// Preview runs selection and generation without touching stored resumes.
func (s *Service) Preview(ctx context.Context, userID, templateID string, opts GenerateOptions) (resumes.BuilderData, Selection, error) {
	profile, err := s.Profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, profiles.ErrNotFound) {
			return resumes.BuilderData{}, Selection{}, ErrProfileNotAvailable
		}
		return resumes.BuilderData{}, Selection{}, err
	}
	template, err := s.Templates.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, templates.ErrNotFound) {
			return resumes.BuilderData{}, Selection{}, ErrTemplateNotFound
		}
		return resumes.BuilderData{}, Selection{}, err
	}
	selection := s.Registry.Select(profile, opts.StrategyOverride)
	return Generate(selection.Strategy, profile, template, opts.TargetIndustry), selection, nil
}
