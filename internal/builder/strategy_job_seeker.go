package builder

import (
	"strings"

	"resume-builder-backend/internal/profiles"
	"resume-builder-backend/internal/resumes"
)

// experiencedJobSeeker handles actively searching candidates with work
// history. Parsing rules match the professional strategy, but skills merge
// in the opposite priority: the template's curated skill set is the base and
// profile skills override or extend it.
type experiencedJobSeeker struct{}

func (experiencedJobSeeker) Name() string { return "Experienced Job Seeker" }

func (experiencedJobSeeker) IsApplicable(p profiles.Profile) bool {
	return !p.IsStudent() && p.HasWorkExperience()
}

func (experiencedJobSeeker) bonuses(p profiles.Profile) []bonus {
	var out []bonus
	if p.HasWorkExperience() {
		out = append(out, bonus{0.2, "Has work history to present"})
	}
	stage := strings.ToLower(strings.TrimSpace(p.CareerStage))
	if stage == "job_seeker" || strings.Contains(stage, "seeking") {
		out = append(out, bonus{0.2, "Actively seeking a new role"})
	}
	if strings.TrimSpace(p.TargetJobType) != "" {
		out = append(out, bonus{0.1, "Target job type specified"})
	}
	return out
}

func (experiencedJobSeeker) summary(in input) string {
	return mergedSummary(in)
}

func (experiencedJobSeeker) experience(in input) []resumes.Experience {
	recs := in.profile.ExperienceRecords()
	if len(recs) == 0 {
		return starterExperience(in.template)
	}
	return experienceFromProfile(recs)
}

func (experiencedJobSeeker) education(in input) []resumes.Education {
	recs := in.profile.EducationRecords()
	if len(recs) == 0 {
		return starterEducation(in.template)
	}
	return educationFromProfile(recs)
}

func (experiencedJobSeeker) skills(in input) []resumes.Skill {
	base := starterSkills(in.template)
	level := skillLevelForProfile(in.profile)
	for _, name := range in.profile.SkillNames() {
		replaced := false
		for i := range base {
			if strings.EqualFold(base[i].Name, name) {
				base[i].Level = level
				replaced = true
				break
			}
		}
		if !replaced {
			base = append(base, skillsFromNames([]string{name}, level)...)
		}
	}
	return base
}

func (experiencedJobSeeker) projects(in input) []resumes.Project {
	recs := in.profile.ProjectRecords()
	if len(recs) == 0 {
		return starterProjects(in.template)
	}
	return projectsFromProfile(recs)
}
