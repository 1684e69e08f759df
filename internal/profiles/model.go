package profiles

import (
	"strings"
	"time"
)

// Profile is the flat stored career record for a user. Several list-like
// fields may arrive as native arrays or as JSON-encoded strings depending on
// which client version wrote them; use the accessors in normalize.go rather
// than reading the raw fields.
type Profile struct {
	UserID string `json:"user_id"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	Website   string `json:"website"`

	ExperienceLevel     string `json:"experience_level"`
	CareerStage         string `json:"career_stage"`
	TargetIndustry      string `json:"target_industry"`
	TargetJobType       string `json:"target_job_type"`
	ProfessionalSummary string `json:"professional_summary"`
	EducationLevel      string `json:"education_level"`

	WorkExperience any `json:"work_experience"`
	Education      any `json:"education"`
	Skills         any `json:"skills"`
	KeySkills      any `json:"key_skills"`
	Projects       any `json:"projects"`

	AcademicProjects          string `json:"academic_projects"`
	PersonalProjects          string `json:"personal_projects"`
	VolunteerExperience       string `json:"volunteer_experience"`
	ExtracurricularActivities string `json:"extracurricular_activities"`

	UpdatedAt time.Time `json:"updated_at"`
}

// IsStudent reports whether the profile marks the user as a current student.
func (p Profile) IsStudent() bool {
	stage := strings.ToLower(strings.TrimSpace(p.CareerStage))
	level := strings.ToLower(strings.TrimSpace(p.ExperienceLevel))
	return strings.Contains(stage, "student") || level == "student"
}

// HasWorkExperience reports whether the profile carries at least one
// non-empty structured work-experience entry.
func (p Profile) HasWorkExperience() bool {
	for _, rec := range p.ExperienceRecords() {
		if rec.Company != "" || rec.Position != "" {
			return true
		}
	}
	return false
}

// DisplayName splits the best available name into first/last parts.
func (p Profile) DisplayName() (string, string) {
	first := strings.TrimSpace(p.FirstName)
	last := strings.TrimSpace(p.LastName)
	if first != "" || last != "" {
		return first, last
	}
	full := strings.Fields(strings.TrimSpace(p.FullName))
	switch {
	case len(full) == 0:
		return "", ""
	case len(full) == 1:
		return full[0], ""
	default:
		return full[0], strings.Join(full[1:], " ")
	}
}
