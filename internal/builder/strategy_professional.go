package builder

import (
	"strings"

	"resume-builder-backend/internal/profiles"
	"resume-builder-backend/internal/resumes"
)

// experiencedProfessional trusts structured work history and presents the
// user's own skills first. It is registered first and doubles as the
// catch-all default when nothing else applies.
type experiencedProfessional struct{}

func (experiencedProfessional) Name() string { return "Experienced Professional" }

func (experiencedProfessional) IsApplicable(p profiles.Profile) bool {
	if p.IsStudent() {
		return false
	}
	if p.HasWorkExperience() {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(p.ExperienceLevel)) {
	case "mid", "senior", "executive", "experienced":
		return true
	}
	return false
}

func (experiencedProfessional) bonuses(p profiles.Profile) []bonus {
	var out []bonus
	switch strings.ToLower(strings.TrimSpace(p.ExperienceLevel)) {
	case "senior", "executive":
		out = append(out, bonus{0.3, "Senior experience level"})
	case "mid":
		out = append(out, bonus{0.15, "Mid-level experience"})
	}
	if p.HasWorkExperience() {
		out = append(out, bonus{0.15, "Has structured work history"})
	}
	if len(p.ExperienceRecords()) >= 3 {
		out = append(out, bonus{0.1, "Multiple roles to draw from"})
	}
	return out
}

func (experiencedProfessional) summary(in input) string {
	return mergedSummary(in)
}

func (experiencedProfessional) experience(in input) []resumes.Experience {
	recs := in.profile.ExperienceRecords()
	if len(recs) == 0 {
		return starterExperience(in.template)
	}
	return experienceFromProfile(recs)
}

func (experiencedProfessional) education(in input) []resumes.Education {
	recs := in.profile.EducationRecords()
	if len(recs) == 0 {
		return starterEducation(in.template)
	}
	return educationFromProfile(recs)
}

// skills: the user's own skills lead, template skills fill remaining gaps.
func (experiencedProfessional) skills(in input) []resumes.Skill {
	own := skillsFromNames(in.profile.SkillNames(), skillLevelForProfile(in.profile))
	if len(own) == 0 {
		return starterSkills(in.template)
	}
	return appendMissingSkills(own, starterSkills(in.template))
}

func (experiencedProfessional) projects(in input) []resumes.Project {
	recs := in.profile.ProjectRecords()
	if len(recs) == 0 {
		return starterProjects(in.template)
	}
	return projectsFromProfile(recs)
}
