package builder

import (
	"strings"

	"github.com/google/uuid"

	"resume-builder-backend/internal/profiles"
	"resume-builder-backend/internal/resumes"
)

// educationLevelDegrees maps the education_level enum to a displayable
// degree name for the synthesized education entry.
var educationLevelDegrees = map[string]string{
	"high_school": "High School Diploma",
	"ged":         "GED",
	"associate":   "Associate Degree",
	"bachelor":    "Bachelor's Degree",
	"bachelors":   "Bachelor's Degree",
	"master":      "Master's Degree",
	"masters":     "Master's Degree",
	"doctorate":   "Doctorate",
	"phd":         "Doctorate",
	"bootcamp":    "Certificate Program",
}

// firstTimeJobSeeker serves profiles with no structured work history that
// are not students. The experience section always comes from the template's
// starter examples, since the profile has none to offer.
type firstTimeJobSeeker struct{}

func (firstTimeJobSeeker) Name() string { return "First-Time Job Seeker" }

func (firstTimeJobSeeker) IsApplicable(p profiles.Profile) bool {
	return !p.HasWorkExperience() && !p.IsStudent()
}

func (firstTimeJobSeeker) bonuses(p profiles.Profile) []bonus {
	var out []bonus
	if !p.HasWorkExperience() {
		out = append(out, bonus{0.25, "No work history yet"})
	}
	if strings.ToLower(strings.TrimSpace(p.ExperienceLevel)) == "entry" {
		out = append(out, bonus{0.15, "Entry experience level"})
	}
	if len(p.EducationRecords()) > 0 {
		out = append(out, bonus{0.1, "Has education to feature"})
	}
	return out
}

func (firstTimeJobSeeker) summary(in input) string {
	return mergedSummary(in)
}

func (firstTimeJobSeeker) experience(in input) []resumes.Experience {
	return starterExperience(in.template)
}

func (firstTimeJobSeeker) education(in input) []resumes.Education {
	recs := in.profile.EducationRecords()
	if len(recs) > 0 {
		return educationFromProfile(recs)
	}
	if entry, ok := synthesizedEducation(in.profile); ok {
		return []resumes.Education{entry}
	}
	return starterEducation(in.template)
}

// synthesizedEducation builds a single entry from the education_level enum
// when the profile has no structured education.
func synthesizedEducation(p profiles.Profile) (resumes.Education, bool) {
	key := strings.ToLower(strings.TrimSpace(p.EducationLevel))
	key = strings.ReplaceAll(key, " ", "_")
	degree, ok := educationLevelDegrees[key]
	if !ok {
		return resumes.Education{}, false
	}
	return resumes.Education{
		ID:     uuid.NewString(),
		Degree: degree,
	}, true
}

func (firstTimeJobSeeker) skills(in input) []resumes.Skill {
	own := skillsFromNames(in.profile.SkillNames(), "intermediate")
	if len(own) == 0 {
		return starterSkills(in.template)
	}
	return appendMissingSkills(own, starterSkills(in.template))
}

func (firstTimeJobSeeker) projects(in input) []resumes.Project {
	synthesized := projectsFromFreeText([]freeTextSource{
		{name: "Academic Project", text: in.profile.AcademicProjects},
		{name: "Personal Project", text: in.profile.PersonalProjects},
		{name: "Volunteer Experience", text: in.profile.VolunteerExperience},
	})
	if len(synthesized) > 0 {
		return synthesized
	}
	return starterProjects(in.template)
}
