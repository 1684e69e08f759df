package resumes

import "time"

// PersonalInfo holds the contact block of a resume document.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	Website   string `json:"website"`
}

// Experience is one work-history entry. IDs are generated at draft time and
// never carried over from profile data, which has no identity concept.
type Experience struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

// Education is one education entry.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa"`
	Description string `json:"description"`
}

// Skill is a named skill with a proficiency level.
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Project is a portfolio entry.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
}

// Settings carries the rendering configuration copied from the template.
type Settings struct {
	Layout       string   `json:"layout"`
	ColorScheme  string   `json:"colorScheme"`
	FontSize     string   `json:"fontSize"`
	Spacing      string   `json:"spacing"`
	SectionOrder []string `json:"sectionOrder"`
}

// BuilderData is the complete generated resume document.
type BuilderData struct {
	PersonalInfo   PersonalInfo `json:"personalInfo"`
	Summary        string       `json:"summary"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Skills         []Skill      `json:"skills"`
	Projects       []Project    `json:"projects"`
	Settings       Settings     `json:"settings"`
	CurrentStep    string       `json:"currentStep"`
	CompletedSteps []string     `json:"completedSteps"`
}

// Resume is a persisted, user-editable resume document.
type Resume struct {
	ID         string      `json:"id"`
	UserID     string      `json:"userId"`
	TemplateID string      `json:"templateId"`
	Data       BuilderData `json:"data"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}
