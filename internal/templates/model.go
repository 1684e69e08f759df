package templates

import "resume-builder-backend/internal/resumes"

// StarterData is the default content a template seeds a new resume with.
// Starter entries carry no IDs; generation assigns fresh ones when copying.
type StarterData struct {
	PersonalInfo resumes.PersonalInfo `json:"personalInfo"`
	Summary      string               `json:"summary"`
	Experience   []resumes.Experience `json:"experience"`
	Education    []resumes.Education  `json:"education"`
	Skills       []resumes.Skill      `json:"skills"`
	Projects     []resumes.Project    `json:"projects"`
}

// Template is a visual/layout definition plus starter content. Templates are
// immutable inputs to generation and are never mutated.
type Template struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	StyleTags    []string         `json:"styleTags"`
	Popularity   int              `json:"popularity"` // 0-100 usage signal
	ATSFriendly  bool             `json:"atsFriendly"`
	Placeholders []string         `json:"placeholders"`
	Starter      StarterData      `json:"starterData"`
	Settings     resumes.Settings `json:"settings"`
}
