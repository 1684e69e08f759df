package builder

import (
	"strings"

	"resume-builder-backend/internal/resumes"
)

// SmartMergeField merges a profile value with a template starter value.
// A non-empty profile value always wins. A template value is used only when
// it is not one of the known placeholder strings, so sample text like
// "John Doe" never leaks into a real draft while crafted defaults still
// populate empty fields. Placeholder comparison is case-insensitive and
// exact.
func SmartMergeField(profileValue, templateValue string, placeholders []string) string {
	if trimmed := strings.TrimSpace(profileValue); trimmed != "" {
		return trimmed
	}
	trimmed := strings.TrimSpace(templateValue)
	if trimmed == "" {
		return ""
	}
	for _, placeholder := range placeholders {
		if strings.EqualFold(trimmed, strings.TrimSpace(placeholder)) {
			return ""
		}
	}
	return trimmed
}

// MergeIntoExisting folds a freshly generated draft into a live, user-edited
// document without clobbering user work. A section is overwritten only when
// its current value is empty or still matches a known default sentinel from
// the starter content.
func MergeIntoExisting(existing, draft resumes.BuilderData, sentinels []string) resumes.BuilderData {
	out := existing

	out.PersonalInfo.FirstName = keepOrReplace(existing.PersonalInfo.FirstName, draft.PersonalInfo.FirstName, sentinels)
	out.PersonalInfo.LastName = keepOrReplace(existing.PersonalInfo.LastName, draft.PersonalInfo.LastName, sentinels)
	out.PersonalInfo.Email = keepOrReplace(existing.PersonalInfo.Email, draft.PersonalInfo.Email, sentinels)
	out.PersonalInfo.Phone = keepOrReplace(existing.PersonalInfo.Phone, draft.PersonalInfo.Phone, sentinels)
	out.PersonalInfo.Location = keepOrReplace(existing.PersonalInfo.Location, draft.PersonalInfo.Location, sentinels)
	out.PersonalInfo.LinkedIn = keepOrReplace(existing.PersonalInfo.LinkedIn, draft.PersonalInfo.LinkedIn, sentinels)
	out.PersonalInfo.Website = keepOrReplace(existing.PersonalInfo.Website, draft.PersonalInfo.Website, sentinels)

	out.Summary = keepOrReplace(existing.Summary, draft.Summary, sentinels)

	if experienceStillDefault(existing.Experience, sentinels) {
		out.Experience = draft.Experience
	}
	if educationStillDefault(existing.Education, sentinels) {
		out.Education = draft.Education
	}
	if len(existing.Skills) == 0 {
		out.Skills = draft.Skills
	}
	if projectsStillDefault(existing.Projects, sentinels) {
		out.Projects = draft.Projects
	}
	if existing.Settings.Layout == "" {
		out.Settings = draft.Settings
	}
	if existing.CurrentStep == "" {
		out.CurrentStep = draft.CurrentStep
	}
	if len(existing.CompletedSteps) == 0 {
		out.CompletedSteps = draft.CompletedSteps
	}
	return out
}

func keepOrReplace(existing, draft string, sentinels []string) string {
	trimmed := strings.TrimSpace(existing)
	if trimmed == "" || isSentinel(trimmed, sentinels) {
		if draft != "" {
			return draft
		}
	}
	return existing
}

func isSentinel(value string, sentinels []string) bool {
	for _, s := range sentinels {
		if strings.EqualFold(value, s) {
			return true
		}
	}
	return false
}

func experienceStillDefault(entries []resumes.Experience, sentinels []string) bool {
	if len(entries) == 0 {
		return true
	}
	for _, e := range entries {
		if !isSentinel(strings.TrimSpace(e.Company), sentinels) {
			return false
		}
	}
	return true
}

func educationStillDefault(entries []resumes.Education, sentinels []string) bool {
	if len(entries) == 0 {
		return true
	}
	for _, e := range entries {
		if !isSentinel(strings.TrimSpace(e.Institution), sentinels) {
			return false
		}
	}
	return true
}

func projectsStillDefault(entries []resumes.Project, sentinels []string) bool {
	if len(entries) == 0 {
		return true
	}
	for _, p := range entries {
		if !isSentinel(strings.TrimSpace(p.Name), sentinels) {
			return false
		}
	}
	return true
}
