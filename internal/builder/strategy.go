package builder

import (
	"strings"

	"github.com/google/uuid"

	"resume-builder-backend/internal/profiles"
	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/templates"
)

// input bundles the read-only inputs of one generation run.
type input struct {
	profile  profiles.Profile
	template templates.Template
	industry string
}

// bonus is one selector scoring increment with its human-readable reason.
type bonus struct {
	delta  float64
	reason string
}

// Strategy is one algorithm for turning a profile and template into a draft,
// specialized by career stage. The set of strategies is closed: all
// implementations live in this package and are registered by NewRegistry, so
// the section hooks stay unexported.
type Strategy interface {
	Name() string
	IsApplicable(p profiles.Profile) bool

	bonuses(p profiles.Profile) []bonus
	summary(in input) string
	experience(in input) []resumes.Experience
	education(in input) []resumes.Education
	skills(in input) []resumes.Skill
	projects(in input) []resumes.Project
}

// Generate runs the shared pipeline: personal info, summary, experience,
// education, skills, projects, settings. Personal info and settings use the
// shared default steps; the rest dispatch to the strategy.
func Generate(s Strategy, p profiles.Profile, t templates.Template, targetIndustry string) resumes.BuilderData {
	in := input{
		profile:  p,
		template: t,
		industry: strings.TrimSpace(targetIndustry),
	}
	if in.industry == "" {
		in.industry = strings.TrimSpace(p.TargetIndustry)
	}

	return resumes.BuilderData{
		PersonalInfo:   personalInfo(p, t),
		Summary:        s.summary(in),
		Experience:     s.experience(in),
		Education:      s.education(in),
		Skills:         s.skills(in),
		Projects:       s.projects(in),
		Settings:       copySettings(t),
		CurrentStep:    "personal-info",
		CompletedSteps: []string{},
	}
}

// personalInfo is the shared contact-field step: profile wins, template
// defaults fill gaps unless they are placeholder text.
func personalInfo(p profiles.Profile, t templates.Template) resumes.PersonalInfo {
	first, last := p.DisplayName()
	starter := t.Starter.PersonalInfo
	ph := t.Placeholders
	return resumes.PersonalInfo{
		FirstName: SmartMergeField(first, starter.FirstName, ph),
		LastName:  SmartMergeField(last, starter.LastName, ph),
		Email:     SmartMergeField(p.Email, starter.Email, ph),
		Phone:     SmartMergeField(p.Phone, starter.Phone, ph),
		Location:  SmartMergeField(p.Location, starter.Location, ph),
		LinkedIn:  SmartMergeField(p.LinkedIn, starter.LinkedIn, ph),
		Website:   SmartMergeField(p.Website, starter.Website, ph),
	}
}

// copySettings copies template settings verbatim, cloning the section order
// so the template stays immutable.
func copySettings(t templates.Template) resumes.Settings {
	out := t.Settings
	out.SectionOrder = append([]string(nil), t.Settings.SectionOrder...)
	return out
}

// mergedSummary is the default summary step shared by most strategies.
func mergedSummary(in input) string {
	return SmartMergeField(in.profile.ProfessionalSummary, in.template.Starter.Summary, in.template.Placeholders)
}

func experienceFromProfile(recs []profiles.ExperienceRecord) []resumes.Experience {
	out := make([]resumes.Experience, 0, len(recs))
	for _, rec := range recs {
		out = append(out, resumes.Experience{
			ID:          uuid.NewString(),
			Company:     rec.Company,
			Position:    rec.Position,
			StartDate:   rec.StartDate,
			EndDate:     rec.EndDate,
			Current:     rec.Current,
			Location:    rec.Location,
			Description: rec.Description,
			Highlights:  append([]string(nil), rec.Highlights...),
		})
	}
	return out
}

func starterExperience(t templates.Template) []resumes.Experience {
	out := make([]resumes.Experience, 0, len(t.Starter.Experience))
	for _, e := range t.Starter.Experience {
		copied := e
		copied.ID = uuid.NewString()
		copied.Highlights = append([]string(nil), e.Highlights...)
		out = append(out, copied)
	}
	return out
}

func educationFromProfile(recs []profiles.EducationRecord) []resumes.Education {
	out := make([]resumes.Education, 0, len(recs))
	for _, rec := range recs {
		out = append(out, resumes.Education{
			ID:          uuid.NewString(),
			Institution: rec.Institution,
			Degree:      rec.Degree,
			Field:       rec.Field,
			StartDate:   rec.StartDate,
			EndDate:     rec.EndDate,
			GPA:         rec.GPA,
			Description: rec.Description,
		})
	}
	return out
}

func starterEducation(t templates.Template) []resumes.Education {
	out := make([]resumes.Education, 0, len(t.Starter.Education))
	for _, e := range t.Starter.Education {
		copied := e
		copied.ID = uuid.NewString()
		out = append(out, copied)
	}
	return out
}

func skillsFromNames(names []string, level string) []resumes.Skill {
	out := make([]resumes.Skill, 0, len(names))
	for _, name := range names {
		out = append(out, resumes.Skill{
			ID:    uuid.NewString(),
			Name:  name,
			Level: level,
		})
	}
	return out
}

func starterSkills(t templates.Template) []resumes.Skill {
	out := make([]resumes.Skill, 0, len(t.Starter.Skills))
	for _, s := range t.Starter.Skills {
		copied := s
		copied.ID = uuid.NewString()
		out = append(out, copied)
	}
	return out
}

// appendMissingSkills appends entries from extra whose names are not already
// present in base (case-insensitive).
func appendMissingSkills(base, extra []resumes.Skill) []resumes.Skill {
	seen := make(map[string]bool, len(base))
	for _, s := range base {
		seen[strings.ToLower(s.Name)] = true
	}
	out := base
	for _, s := range extra {
		if seen[strings.ToLower(s.Name)] {
			continue
		}
		seen[strings.ToLower(s.Name)] = true
		out = append(out, s)
	}
	return out
}

func starterProjects(t templates.Template) []resumes.Project {
	out := make([]resumes.Project, 0, len(t.Starter.Projects))
	for _, p := range t.Starter.Projects {
		copied := p
		copied.ID = uuid.NewString()
		copied.Technologies = append([]string(nil), p.Technologies...)
		out = append(out, copied)
	}
	return out
}

func projectsFromProfile(recs []profiles.ProjectRecord) []resumes.Project {
	out := make([]resumes.Project, 0, len(recs))
	for _, rec := range recs {
		out = append(out, resumes.Project{
			ID:           uuid.NewString(),
			Name:         rec.Name,
			Description:  rec.Description,
			Technologies: append([]string(nil), rec.Technologies...),
			Link:         rec.Link,
		})
	}
	return out
}

// freeTextSource pairs a synthesized project name with the free-text profile
// field it is built from.
type freeTextSource struct {
	name string
	text string
}

// projectsFromFreeText synthesizes one project per non-empty free-text
// source. Returns nil when every source is empty.
func projectsFromFreeText(sources []freeTextSource) []resumes.Project {
	var out []resumes.Project
	for _, src := range sources {
		text := strings.TrimSpace(src.text)
		if text == "" {
			continue
		}
		out = append(out, resumes.Project{
			ID:          uuid.NewString(),
			Name:        src.name,
			Description: text,
		})
	}
	return out
}

func skillLevelForProfile(p profiles.Profile) string {
	switch strings.ToLower(strings.TrimSpace(p.ExperienceLevel)) {
	case "senior", "executive":
		return "advanced"
	case "mid":
		return "intermediate"
	default:
		return "intermediate"
	}
}
