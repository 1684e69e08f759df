package builder

import (
	"strings"

	"resume-builder-backend/internal/profiles"
	"resume-builder-backend/internal/resumes"
)

// transferableKeywords mark highlights worth surfacing when pivoting
// industries: leadership, communication, and problem-solving signals carry
// across fields.
var transferableKeywords = []string{
	"leadership",
	"led",
	"managed",
	"mentored",
	"trained",
	"coordinated",
	"communication",
	"collaborated",
	"presented",
	"negotiated",
	"problem-solving",
	"problem solving",
	"analyzed",
	"improved",
	"organized",
}

// careerChanger reframes an existing work history toward a new industry:
// transferable highlights move to the front of each entry and a bridging
// summary is synthesized when the profile has none.
type careerChanger struct{}

func (careerChanger) Name() string { return "Career Changer" }

func (careerChanger) IsApplicable(p profiles.Profile) bool {
	if !p.HasWorkExperience() {
		return false
	}
	stage := strings.ToLower(strings.TrimSpace(p.CareerStage))
	if stage == "career_change" || stage == "career_changer" {
		return true
	}
	return strings.Contains(stage, "transition") && strings.TrimSpace(p.TargetIndustry) != ""
}

func (careerChanger) bonuses(p profiles.Profile) []bonus {
	var out []bonus
	stage := strings.ToLower(strings.TrimSpace(p.CareerStage))
	if stage == "career_change" || stage == "career_changer" {
		out = append(out, bonus{0.3, "Explicitly marked as career changer"})
	} else if strings.Contains(stage, "transition") {
		out = append(out, bonus{0.2, "Career stage mentions transition"})
	}
	if strings.TrimSpace(p.TargetIndustry) != "" {
		out = append(out, bonus{0.2, "Target industry specified"})
	}
	if p.HasWorkExperience() {
		out = append(out, bonus{0.1, "Has transferable work history"})
	}
	return out
}

func (careerChanger) summary(in input) string {
	if merged := mergedSummary(in); merged != "" && strings.TrimSpace(in.profile.ProfessionalSummary) != "" {
		return merged
	}
	industry := in.industry
	if industry == "" {
		industry = "a new field"
	}
	return "Professional transitioning to " + industry +
		", bringing a proven record of leadership, communication, and problem-solving from prior roles."
}

func (c careerChanger) experience(in input) []resumes.Experience {
	recs := in.profile.ExperienceRecords()
	if len(recs) == 0 {
		return starterExperience(in.template)
	}
	out := experienceFromProfile(recs)
	for i := range out {
		out[i].Highlights = reorderTransferable(out[i].Highlights)
	}
	return out
}

// reorderTransferable moves highlights containing a transferable keyword to
// the front, preserving relative order within both groups.
func reorderTransferable(highlights []string) []string {
	if len(highlights) < 2 {
		return highlights
	}
	front := make([]string, 0, len(highlights))
	rest := make([]string, 0, len(highlights))
	for _, h := range highlights {
		if containsTransferable(h) {
			front = append(front, h)
		} else {
			rest = append(rest, h)
		}
	}
	return append(front, rest...)
}

func containsTransferable(highlight string) bool {
	lower := strings.ToLower(highlight)
	for _, kw := range transferableKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func (careerChanger) education(in input) []resumes.Education {
	recs := in.profile.EducationRecords()
	if len(recs) == 0 {
		return starterEducation(in.template)
	}
	return educationFromProfile(recs)
}

func (careerChanger) skills(in input) []resumes.Skill {
	own := skillsFromNames(in.profile.SkillNames(), skillLevelForProfile(in.profile))
	if len(own) == 0 {
		return starterSkills(in.template)
	}
	return appendMissingSkills(own, starterSkills(in.template))
}

func (careerChanger) projects(in input) []resumes.Project {
	recs := in.profile.ProjectRecords()
	if len(recs) == 0 {
		return starterProjects(in.template)
	}
	return projectsFromProfile(recs)
}
