package templates

import (
	"sort"
	"strings"

	"resume-builder-backend/internal/profiles"
)

// Per-dimension ceilings. The total is the plain sum of the already-capped
// dimensions, so it stays within [0, 100].
const (
	industryCeiling     = 30
	experienceCeiling   = 25
	jobTypeCeiling      = 15
	styleCeiling        = 20
	completenessCeiling = 10

	recommendedCount = 3
)

// Recommendation is a scored template with explainability reasons.
type Recommendation struct {
	TemplateID    string   `json:"templateId"`
	Name          string   `json:"name"`
	Score         int      `json:"score"`
	Reasons       []string `json:"reasons"`
	IsRecommended bool     `json:"isRecommended"`
}

// Recommend scores every template against the profile and flags the top 3.
// Sorting is stable, so equal scores keep catalog order.
func Recommend(profile profiles.Profile, catalog []Template) []Recommendation {
	out := make([]Recommendation, 0, len(catalog))
	for _, t := range catalog {
		score, reasons := ScoreTemplate(profile, t)
		out = append(out, Recommendation{
			TemplateID: t.ID,
			Name:       t.Name,
			Score:      score,
			Reasons:    reasons,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	for i := range out {
		if i < recommendedCount {
			out[i].IsRecommended = true
		}
	}
	return out
}

// ScoreTemplate computes the 0-100 fit score and its reasons for one template.
func ScoreTemplate(profile profiles.Profile, t Template) (int, []string) {
	reasons := make([]string, 0, 5)
	total := 0

	if s := tagTableScore(profile.TargetIndustry, industryStyleTags, t.StyleTags, 15, industryCeiling); s > 0 {
		total += s
		reasons = append(reasons, "Style suits the "+strings.TrimSpace(profile.TargetIndustry)+" industry")
	}
	if s := tagTableScore(profile.ExperienceLevel, experienceLevelTags, t.StyleTags, 13, experienceCeiling); s > 0 {
		total += s
		reasons = append(reasons, "Layout fits a "+strings.ToLower(strings.TrimSpace(profile.ExperienceLevel))+" experience level")
	}
	if s := tagTableScore(profile.TargetJobType, jobTypeTags, t.StyleTags, 8, jobTypeCeiling); s > 0 {
		total += s
		reasons = append(reasons, "Works well for "+strings.ToLower(strings.TrimSpace(profile.TargetJobType))+" roles")
	}

	style := t.Popularity / 5
	if t.ATSFriendly {
		style += 4
	}
	if style > styleCeiling {
		style = styleCeiling
	}
	if style > 0 {
		total += style
		if t.Popularity >= 80 {
			reasons = append(reasons, "Popular choice among users")
		}
		if t.ATSFriendly {
			reasons = append(reasons, "ATS-friendly formatting")
		}
	}

	if s := completenessScore(profile, t); s > 0 {
		total += s
		reasons = append(reasons, "Starter content covers gaps in your profile")
	}

	if total > 100 {
		total = 100
	}
	return total, reasons
}

// tagTableScore counts keyword-table tag matches against the template's
// style tags, scaled by perMatch and capped at ceiling. The profile value is
// matched against table keys by case-insensitive substring containment.
func tagTableScore(value string, table map[string][]string, styleTags []string, perMatch, ceiling int) int {
	needle := strings.ToLower(strings.TrimSpace(value))
	if needle == "" {
		return 0
	}
	var preferred []string
	for key, tags := range table {
		if strings.Contains(needle, key) {
			preferred = append(preferred, tags...)
		}
	}
	if len(preferred) == 0 {
		return 0
	}

	matches := 0
	for _, want := range preferred {
		for _, have := range styleTags {
			if strings.Contains(strings.ToLower(have), strings.ToLower(want)) {
				matches++
				break
			}
		}
	}
	score := matches * perMatch
	if score > ceiling {
		score = ceiling
	}
	return score
}

// completenessScore rewards templates whose starter data fills sections the
// profile leaves empty.
func completenessScore(profile profiles.Profile, t Template) int {
	score := 0
	if strings.TrimSpace(profile.ProfessionalSummary) == "" && strings.TrimSpace(t.Starter.Summary) != "" {
		score += 2
	}
	if len(profile.ExperienceRecords()) == 0 && len(t.Starter.Experience) > 0 {
		score += 2
	}
	if len(profile.EducationRecords()) == 0 && len(t.Starter.Education) > 0 {
		score += 2
	}
	if len(profile.SkillNames()) == 0 && len(t.Starter.Skills) > 0 {
		score += 2
	}
	if len(profile.ProjectRecords()) == 0 && len(t.Starter.Projects) > 0 {
		score += 2
	}
	if score > completenessCeiling {
		score = completenessCeiling
	}
	return score
}
