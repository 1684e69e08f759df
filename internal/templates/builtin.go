package templates

import "resume-builder-backend/internal/resumes"

// Common placeholder strings shared by the built-in templates. Placeholder
// text must never leak into a real user's draft; crafted defaults (summaries,
// example highlights) are allowed to.
var commonPlaceholders = []string{
	"John Doe",
	"Jane Doe",
	"John",
	"Jane",
	"Doe",
	"email@example.com",
	"john.doe@example.com",
	"(555) 123-4567",
	"City, State",
	"linkedin.com/in/yourname",
	"yourwebsite.com",
}

// DefaultSentinels are starter-content literals that mark a section as
// still-default and therefore safe to overwrite when merging a generated
// draft into an existing resume. Kept next to the starter data that defines
// them so the literals cannot drift apart.
var DefaultSentinels = []string{
	"Tech Solutions Inc.",
	"Creative Studio Co.",
	"State University",
	"Sample Project",
}

// Builtin returns the compile-time template catalog.
func Builtin() []Template {
	return []Template{
		{
			ID:           "modern-professional",
			Name:         "Modern Professional",
			Description:  "Clean single-column layout for experienced candidates.",
			StyleTags:    []string{"modern", "professional", "minimal"},
			Popularity:   92,
			ATSFriendly:  true,
			Placeholders: commonPlaceholders,
			Starter: StarterData{
				PersonalInfo: resumes.PersonalInfo{
					FirstName: "John",
					LastName:  "Doe",
					Email:     "email@example.com",
					Phone:     "(555) 123-4567",
					Location:  "City, State",
				},
				Summary: "Results-driven professional with a track record of delivering measurable outcomes and leading cross-functional initiatives.",
				Experience: []resumes.Experience{
					{
						Company:     "Tech Solutions Inc.",
						Position:    "Senior Specialist",
						StartDate:   "2020-01",
						EndDate:     "",
						Current:     true,
						Description: "Owned key initiatives end to end.",
						Highlights: []string{
							"Led a cross-functional team of 6",
							"Improved process efficiency by 25%",
						},
					},
				},
				Education: []resumes.Education{
					{
						Institution: "State University",
						Degree:      "Bachelor's Degree",
						Field:       "Business Administration",
						EndDate:     "2019",
					},
				},
				Skills: []resumes.Skill{
					{Name: "Project Management", Level: "advanced"},
					{Name: "Communication", Level: "advanced"},
					{Name: "Data Analysis", Level: "intermediate"},
				},
				Projects: []resumes.Project{
					{
						Name:        "Sample Project",
						Description: "Describe a project that shows your strengths.",
					},
				},
			},
			Settings: resumes.Settings{
				Layout:       "single-column",
				ColorScheme:  "navy",
				FontSize:     "medium",
				Spacing:      "comfortable",
				SectionOrder: []string{"personalInfo", "summary", "experience", "education", "skills", "projects"},
			},
		},
		{
			ID:           "executive-classic",
			Name:         "Executive Classic",
			Description:  "Traditional serif layout aimed at senior leadership roles.",
			StyleTags:    []string{"classic", "executive", "professional"},
			Popularity:   78,
			ATSFriendly:  true,
			Placeholders: commonPlaceholders,
			Starter: StarterData{
				PersonalInfo: resumes.PersonalInfo{
					FirstName: "John",
					LastName:  "Doe",
					Email:     "email@example.com",
					Phone:     "(555) 123-4567",
					Location:  "City, State",
				},
				Summary: "Senior leader with deep experience building teams, setting strategy, and driving sustained growth.",
				Experience: []resumes.Experience{
					{
						Company:     "Tech Solutions Inc.",
						Position:    "Director",
						StartDate:   "2016-03",
						Current:     true,
						Description: "Set direction for a multi-team organization.",
						Highlights: []string{
							"Grew annual revenue by 40%",
							"Managed a budget of $2M",
						},
					},
				},
				Education: []resumes.Education{
					{
						Institution: "State University",
						Degree:      "Master's Degree",
						Field:       "Business Administration",
						EndDate:     "2012",
					},
				},
				Skills: []resumes.Skill{
					{Name: "Strategic Planning", Level: "expert"},
					{Name: "Team Leadership", Level: "expert"},
					{Name: "Budget Management", Level: "advanced"},
				},
			},
			Settings: resumes.Settings{
				Layout:       "two-column",
				ColorScheme:  "charcoal",
				FontSize:     "medium",
				Spacing:      "compact",
				SectionOrder: []string{"personalInfo", "summary", "experience", "skills", "education", "projects"},
			},
		},
		{
			ID:           "creative-bold",
			Name:         "Creative Bold",
			Description:  "Colorful asymmetric layout for design and media roles.",
			StyleTags:    []string{"creative", "bold", "modern"},
			Popularity:   64,
			ATSFriendly:  false,
			Placeholders: commonPlaceholders,
			Starter: StarterData{
				PersonalInfo: resumes.PersonalInfo{
					FirstName: "Jane",
					LastName:  "Doe",
					Email:     "email@example.com",
					Phone:     "(555) 123-4567",
					Location:  "City, State",
					Website:   "yourwebsite.com",
				},
				Summary: "Creative professional who blends visual craft with practical delivery.",
				Experience: []resumes.Experience{
					{
						Company:     "Creative Studio Co.",
						Position:    "Designer",
						StartDate:   "2021-06",
						Current:     true,
						Description: "Delivered brand and product design work.",
						Highlights: []string{
							"Shipped 12 client campaigns",
							"Presented concepts to stakeholders",
						},
					},
				},
				Education: []resumes.Education{
					{
						Institution: "State University",
						Degree:      "Bachelor's Degree",
						Field:       "Graphic Design",
						EndDate:     "2021",
					},
				},
				Skills: []resumes.Skill{
					{Name: "Visual Design", Level: "advanced"},
					{Name: "Typography", Level: "advanced"},
					{Name: "Prototyping", Level: "intermediate"},
				},
				Projects: []resumes.Project{
					{
						Name:        "Sample Project",
						Description: "A portfolio piece worth talking about.",
					},
				},
			},
			Settings: resumes.Settings{
				Layout:       "asymmetric",
				ColorScheme:  "coral",
				FontSize:     "medium",
				Spacing:      "comfortable",
				SectionOrder: []string{"personalInfo", "summary", "projects", "experience", "skills", "education"},
			},
		},
		{
			ID:           "simple-starter",
			Name:         "Simple Starter",
			Description:  "Minimal layout for first resumes and students.",
			StyleTags:    []string{"simple", "minimal", "clean"},
			Popularity:   85,
			ATSFriendly:  true,
			Placeholders: commonPlaceholders,
			Starter: StarterData{
				PersonalInfo: resumes.PersonalInfo{
					FirstName: "John",
					LastName:  "Doe",
					Email:     "email@example.com",
					Phone:     "(555) 123-4567",
					Location:  "City, State",
				},
				Summary: "Motivated early-career candidate eager to apply classroom and project experience in a professional setting.",
				Experience: []resumes.Experience{
					{
						Company:     "Tech Solutions Inc.",
						Position:    "Intern",
						StartDate:   "2023-06",
						EndDate:     "2023-08",
						Description: "Supported the team on day-to-day work.",
						Highlights: []string{
							"Assisted with weekly reporting",
							"Documented internal processes",
						},
					},
				},
				Education: []resumes.Education{
					{
						Institution: "State University",
						Degree:      "Bachelor's Degree",
						Field:       "Undeclared",
						EndDate:     "2025",
					},
				},
				Skills: []resumes.Skill{
					{Name: "Microsoft Office", Level: "intermediate"},
					{Name: "Teamwork", Level: "intermediate"},
					{Name: "Time Management", Level: "intermediate"},
				},
				Projects: []resumes.Project{
					{
						Name:        "Sample Project",
						Description: "A class or personal project you are proud of.",
					},
				},
			},
			Settings: resumes.Settings{
				Layout:       "single-column",
				ColorScheme:  "slate",
				FontSize:     "medium",
				Spacing:      "comfortable",
				SectionOrder: []string{"personalInfo", "summary", "education", "experience", "skills", "projects"},
			},
		},
	}
}
