package profiles

import (
	"encoding/json"
	"strings"

	"resume-builder-backend/internal/shared/telemetry"
)

// ExperienceRecord is the canonical shape of one work-history entry after
// alias resolution.
type ExperienceRecord struct {
	Company     string
	Position    string
	StartDate   string
	EndDate     string
	Current     bool
	Location    string
	Description string
	Highlights  []string
}

// EducationRecord is the canonical shape of one education entry.
type EducationRecord struct {
	Institution string
	Degree      string
	Field       string
	StartDate   string
	EndDate     string
	GPA         string
	Description string
}

// ProjectRecord is the canonical shape of one project entry.
type ProjectRecord struct {
	Name         string
	Description  string
	Technologies []string
	Link         string
}

// ExperienceRecords parses the work_experience field into canonical records.
// Absent or malformed input yields an empty slice, never an error.
func (p Profile) ExperienceRecords() []ExperienceRecord {
	items := decodeList("work_experience", p.WorkExperience)
	out := make([]ExperienceRecord, 0, len(items))
	for _, item := range items {
		rec := ExperienceRecord{
			Company:     stringAt(item, "company", "employer"),
			Position:    stringAt(item, "position", "title", "role"),
			StartDate:   stringAt(item, "start_date", "startDate"),
			EndDate:     stringAt(item, "end_date", "endDate"),
			Current:     boolAt(item, "current", "is_current"),
			Location:    stringAt(item, "location"),
			Description: stringAt(item, "description", "summary"),
			Highlights:  ParseHighlights(firstPresent(item, "highlights", "achievements")),
		}
		out = append(out, rec)
	}
	return out
}

// EducationRecords parses the education field into canonical records.
func (p Profile) EducationRecords() []EducationRecord {
	items := decodeList("education", p.Education)
	out := make([]EducationRecord, 0, len(items))
	for _, item := range items {
		out = append(out, EducationRecord{
			Institution: stringAt(item, "institution", "school", "university"),
			Degree:      stringAt(item, "degree"),
			Field:       stringAt(item, "field_of_study", "field", "major"),
			StartDate:   stringAt(item, "start_date", "startDate"),
			EndDate:     stringAt(item, "end_date", "endDate", "graduation_date"),
			GPA:         stringAt(item, "gpa"),
			Description: stringAt(item, "description"),
		})
	}
	return out
}

// ProjectRecords parses the projects field into canonical records.
func (p Profile) ProjectRecords() []ProjectRecord {
	items := decodeList("projects", p.Projects)
	out := make([]ProjectRecord, 0, len(items))
	for _, item := range items {
		out = append(out, ProjectRecord{
			Name:         stringAt(item, "name", "title"),
			Description:  stringAt(item, "description", "summary"),
			Technologies: stringList(firstPresent(item, "technologies", "tech_stack")),
			Link:         stringAt(item, "link", "url"),
		})
	}
	return out
}

// SkillNames parses skills (falling back to key_skills) into a flat list of
// names. Entries may be plain strings or objects with a name/skill key.
func (p Profile) SkillNames() []string {
	raw := p.Skills
	field := "skills"
	if isEmptyField(raw) {
		raw = p.KeySkills
		field = "key_skills"
	}
	if isEmptyField(raw) {
		return []string{}
	}

	if names := stringList(raw); len(names) > 0 {
		return names
	}

	items := decodeList(field, raw)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if name := stringAt(item, "name", "skill"); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// ParseHighlights accepts a highlights value as a native string array or a
// delimited string: newline-separated when the text contains a newline,
// otherwise comma-separated. Non-string and empty entries are dropped.
func ParseHighlights(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case []string:
		return trimNonEmpty(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					out = append(out, trimmed)
				}
			}
		}
		return out
	case string:
		sep := ","
		if strings.Contains(v, "\n") {
			sep = "\n"
		}
		return trimNonEmpty(strings.Split(v, sep))
	default:
		return []string{}
	}
}

// decodeList normalizes a raw list field into []map[string]any. It accepts a
// native array, a JSON-encoded string, or nothing. Malformed JSON degrades
// to an empty result with a soft warning.
func decodeList(field string, raw any) []map[string]any {
	switch v := raw.(type) {
	case nil:
		return nil
	case []map[string]any:
		return v
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		var parsed []map[string]any
		if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
			telemetry.Warn("profile.parse_failed", map[string]any{
				"field": field,
				"error": err.Error(),
			})
			return nil
		}
		return parsed
	case json.RawMessage:
		return decodeList(field, string(v))
	default:
		telemetry.Warn("profile.unexpected_shape", map[string]any{"field": field})
		return nil
	}
}

// stringAt resolves the first non-empty alias in the given precedence order.
func stringAt(rec map[string]any, aliases ...string) string {
	for _, key := range aliases {
		if raw, ok := rec[key]; ok {
			if s, ok := raw.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					return trimmed
				}
			}
		}
	}
	return ""
}

func boolAt(rec map[string]any, aliases ...string) bool {
	for _, key := range aliases {
		raw, ok := rec[key]
		if !ok {
			continue
		}
		switch v := raw.(type) {
		case bool:
			return v
		case string:
			lower := strings.ToLower(strings.TrimSpace(v))
			if lower == "true" || lower == "yes" || lower == "1" {
				return true
			}
			if lower == "false" || lower == "no" || lower == "0" {
				return false
			}
		}
	}
	return false
}

func firstPresent(rec map[string]any, aliases ...string) any {
	for _, key := range aliases {
		if raw, ok := rec[key]; ok && raw != nil {
			return raw
		}
	}
	return nil
}

// stringList flattens a raw value into trimmed strings. A delimited string
// is split the same way as highlights; arrays keep string elements only.
func stringList(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return nil
	case []string:
		return trimNonEmpty(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					out = append(out, trimmed)
				}
			}
		}
		return out
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		if strings.HasPrefix(trimmed, "[") {
			var parsed []any
			if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
				return stringList(parsed)
			}
		}
		sep := ","
		if strings.Contains(trimmed, "\n") {
			sep = "\n"
		}
		return trimNonEmpty(strings.Split(trimmed, sep))
	default:
		return nil
	}
}

func isEmptyField(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	default:
		return false
	}
}

func trimNonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
