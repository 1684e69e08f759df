package profiles

import (
	"reflect"
	"testing"
)

func TestExperienceRecordsAcceptsNativeArray(t *testing.T) {
	p := Profile{
		WorkExperience: []any{
			map[string]any{
				"company":    "Acme Corp",
				"position":   "Engineer",
				"start_date": "2020-01",
				"current":    true,
				"highlights": []any{"Led a team", "Shipped features"},
			},
		},
	}

	recs := p.ExperienceRecords()
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Company != "Acme Corp" {
		t.Fatalf("expected company Acme Corp, got %q", recs[0].Company)
	}
	if recs[0].Position != "Engineer" {
		t.Fatalf("expected position Engineer, got %q", recs[0].Position)
	}
	if !recs[0].Current {
		t.Fatalf("expected current=true")
	}
	if !reflect.DeepEqual(recs[0].Highlights, []string{"Led a team", "Shipped features"}) {
		t.Fatalf("unexpected highlights: %v", recs[0].Highlights)
	}
}

func TestExperienceRecordsAcceptsJSONString(t *testing.T) {
	p := Profile{
		WorkExperience: `[{"employer":"Acme Corp","title":"Senior Engineer","startDate":"2018-03","is_current":"true"}]`,
	}

	recs := p.ExperienceRecords()
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Company != "Acme Corp" {
		t.Fatalf("employer alias not resolved: %q", recs[0].Company)
	}
	if recs[0].Position != "Senior Engineer" {
		t.Fatalf("title alias not resolved: %q", recs[0].Position)
	}
	if recs[0].StartDate != "2018-03" {
		t.Fatalf("startDate alias not resolved: %q", recs[0].StartDate)
	}
	if !recs[0].Current {
		t.Fatalf("is_current string alias not resolved")
	}
}

func TestExperienceRecordsAliasPrecedence(t *testing.T) {
	p := Profile{
		WorkExperience: []any{
			map[string]any{
				"company":  "Primary Inc",
				"employer": "Secondary Inc",
				"position": "Lead",
				"title":    "Ignored",
			},
		},
	}

	recs := p.ExperienceRecords()
	if recs[0].Company != "Primary Inc" {
		t.Fatalf("company should win over employer, got %q", recs[0].Company)
	}
	if recs[0].Position != "Lead" {
		t.Fatalf("position should win over title, got %q", recs[0].Position)
	}
}

func TestExperienceRecordsDegradesGracefully(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{"nil", nil},
		{"empty string", "  "},
		{"malformed json", `[{"company": "Broken`},
		{"wrong type", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Profile{WorkExperience: tt.raw}
			recs := p.ExperienceRecords()
			if recs == nil {
				t.Fatalf("expected non-nil slice")
			}
			if len(recs) != 0 {
				t.Fatalf("expected empty records, got %d", len(recs))
			}
		})
	}
}

func TestEducationRecordsAliases(t *testing.T) {
	p := Profile{
		Education: `[{"school":"State University","degree":"BSc","major":"Physics","graduation_date":"2021"}]`,
	}

	recs := p.EducationRecords()
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Institution != "State University" {
		t.Fatalf("school alias not resolved: %q", recs[0].Institution)
	}
	if recs[0].Field != "Physics" {
		t.Fatalf("major alias not resolved: %q", recs[0].Field)
	}
	if recs[0].EndDate != "2021" {
		t.Fatalf("graduation_date alias not resolved: %q", recs[0].EndDate)
	}
}

func TestSkillNamesShapes(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    []string
	}{
		{
			name:    "string array",
			profile: Profile{Skills: []any{"Go", "SQL"}},
			want:    []string{"Go", "SQL"},
		},
		{
			name:    "object array",
			profile: Profile{Skills: []any{map[string]any{"name": "Go"}, map[string]any{"skill": "SQL"}}},
			want:    []string{"Go", "SQL"},
		},
		{
			name:    "json string",
			profile: Profile{Skills: `["Go","SQL"]`},
			want:    []string{"Go", "SQL"},
		},
		{
			name:    "comma string",
			profile: Profile{Skills: "Go, SQL"},
			want:    []string{"Go", "SQL"},
		},
		{
			name:    "key_skills fallback",
			profile: Profile{KeySkills: []any{"Teamwork"}},
			want:    []string{"Teamwork"},
		},
		{
			name:    "empty",
			profile: Profile{},
			want:    []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.profile.SkillNames()
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseHighlights(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want []string
	}{
		{"nil", nil, []string{}},
		{"native array", []any{"One", " Two ", ""}, []string{"One", "Two"}},
		{"newline string", "One\nTwo, with comma\n", []string{"One", "Two, with comma"}},
		{"comma string", "One, Two", []string{"One", "Two"}},
		{"non string", 7, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseHighlights(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsStudent(t *testing.T) {
	if !(Profile{CareerStage: "current_student"}).IsStudent() {
		t.Fatalf("career stage containing student should mark student")
	}
	if !(Profile{ExperienceLevel: "Student"}).IsStudent() {
		t.Fatalf("experience level student should mark student")
	}
	if (Profile{CareerStage: "job_seeker"}).IsStudent() {
		t.Fatalf("job seeker is not a student")
	}
}

func TestDisplayNameFallsBackToFullName(t *testing.T) {
	first, last := Profile{FullName: "Ada Mary Lovelace"}.DisplayName()
	if first != "Ada" || last != "Mary Lovelace" {
		t.Fatalf("got %q %q", first, last)
	}
	first, last = Profile{FirstName: "Ada", FullName: "Ignored Name"}.DisplayName()
	if first != "Ada" || last != "" {
		t.Fatalf("explicit first name should win, got %q %q", first, last)
	}
}
