package builder

import (
	"strings"

	"resume-builder-backend/internal/profiles"
	"resume-builder-backend/internal/resumes"
)

// student builds resumes for current students. The experience section is
// always empty regardless of profile content: students should not show
// fabricated professional experience.
type student struct{}

func (student) Name() string { return "Student" }

func (student) IsApplicable(p profiles.Profile) bool {
	return p.IsStudent()
}

func (student) bonuses(p profiles.Profile) []bonus {
	var out []bonus
	stage := strings.ToLower(strings.TrimSpace(p.CareerStage))
	if strings.Contains(stage, "student") {
		out = append(out, bonus{0.3, "Career stage marks current student"})
	}
	if len(p.EducationRecords()) > 0 {
		out = append(out, bonus{0.15, "Has education to feature"})
	}
	if strings.TrimSpace(p.ExtracurricularActivities) != "" {
		out = append(out, bonus{0.1, "Extracurricular activities to showcase"})
	}
	return out
}

func (student) summary(in input) string {
	return mergedSummary(in)
}

func (student) experience(in input) []resumes.Experience {
	return []resumes.Experience{}
}

func (student) education(in input) []resumes.Education {
	recs := in.profile.EducationRecords()
	if len(recs) > 0 {
		return educationFromProfile(recs)
	}
	if entry, ok := synthesizedEducation(in.profile); ok {
		return []resumes.Education{entry}
	}
	return starterEducation(in.template)
}

// skills default to beginner level for students.
func (student) skills(in input) []resumes.Skill {
	own := skillsFromNames(in.profile.SkillNames(), "beginner")
	if len(own) > 0 {
		return own
	}
	base := starterSkills(in.template)
	for i := range base {
		base[i].Level = "beginner"
	}
	return base
}

func (student) projects(in input) []resumes.Project {
	synthesized := projectsFromFreeText([]freeTextSource{
		{name: "Academic Project", text: in.profile.AcademicProjects},
		{name: "Personal Project", text: in.profile.PersonalProjects},
		{name: "Volunteer Experience", text: in.profile.VolunteerExperience},
		{name: "Extracurricular Activity", text: in.profile.ExtracurricularActivities},
	})
	if len(synthesized) > 0 {
		return synthesized
	}
	return starterProjects(in.template)
}
