package builder

import (
	"testing"

	"resume-builder-backend/internal/profiles"
)

func seniorProfile() profiles.Profile {
	return profiles.Profile{
		UserID:          "user-1",
		ExperienceLevel: "senior",
		WorkExperience:  `[{"company":"Acme Corp","position":"Staff Engineer","start_date":"2017-02"}]`,
	}
}

func TestSelectSeniorProfessional(t *testing.T) {
	reg := NewRegistry()
	sel := reg.Select(seniorProfile(), "")

	if sel.Name != "Experienced Professional" {
		t.Fatalf("expected Experienced Professional, got %q", sel.Name)
	}
	if sel.Confidence < 0.65 {
		t.Fatalf("expected confidence >= 0.65, got %f", sel.Confidence)
	}
	if !hasReason(sel.Reasons, "Senior experience level") {
		t.Fatalf("expected senior reason, got %v", sel.Reasons)
	}
}

func TestSelectFirstTimeForEmptyHistory(t *testing.T) {
	reg := NewRegistry()
	sel := reg.Select(profiles.Profile{
		ExperienceLevel: "entry",
		WorkExperience:  "[]",
	}, "")

	if sel.Name != "First-Time Job Seeker" {
		t.Fatalf("expected First-Time Job Seeker, got %q", sel.Name)
	}
	if sel.Confidence < 0.5 {
		t.Fatalf("expected confidence >= base, got %f", sel.Confidence)
	}
}

func TestSelectCareerChanger(t *testing.T) {
	reg := NewRegistry()
	sel := reg.Select(profiles.Profile{
		CareerStage:    "career_change",
		TargetIndustry: "Healthcare",
		WorkExperience: `[{"company":"Retail Co","position":"Store Manager"}]`,
	}, "")

	if sel.Name != "Career Changer" {
		t.Fatalf("expected Career Changer, got %q", sel.Name)
	}
	if sel.Confidence != 1.0 {
		t.Fatalf("expected clamped confidence 1.0, got %f", sel.Confidence)
	}
	if !hasReason(sel.Reasons, "Explicitly marked as career changer") {
		t.Fatalf("expected explicit career-changer reason, got %v", sel.Reasons)
	}
}

func TestSelectConfidenceBounds(t *testing.T) {
	reg := NewRegistry()
	inputs := []profiles.Profile{
		{},
		seniorProfile(),
		{CareerStage: "student"},
		{CareerStage: "career_change", TargetIndustry: "Finance", WorkExperience: `[{"company":"A","position":"B"}]`},
		{ExperienceLevel: "entry"},
	}
	for _, p := range inputs {
		sel := reg.Select(p, "")
		if sel.Confidence < 0 || sel.Confidence > 1 {
			t.Fatalf("confidence out of range for %+v: %f", p, sel.Confidence)
		}
		if sel.Strategy == nil {
			t.Fatalf("selection must carry a strategy")
		}
	}
}

func TestSelectManualOverride(t *testing.T) {
	reg := NewRegistry()
	sel := reg.Select(seniorProfile(), "Student")

	if sel.Name != "Student" {
		t.Fatalf("expected override to win, got %q", sel.Name)
	}
	if sel.Confidence != 1.0 {
		t.Fatalf("expected confidence 1.0, got %f", sel.Confidence)
	}
	if len(sel.Reasons) != 1 || sel.Reasons[0] != "Manual override selected" {
		t.Fatalf("unexpected reasons: %v", sel.Reasons)
	}
}

func TestSelectUnknownOverrideFallsThrough(t *testing.T) {
	reg := NewRegistry()
	sel := reg.Select(seniorProfile(), "Time Traveler")

	if sel.Name != "Experienced Professional" {
		t.Fatalf("unknown override must fall back to scoring, got %q", sel.Name)
	}
	if sel.Confidence == 1.0 && len(sel.Reasons) == 1 {
		t.Fatalf("unknown override must not short-circuit")
	}
}

func TestGetFirstMatch(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name    string
		profile profiles.Profile
		want    string
	}{
		{"senior with history", seniorProfile(), "Experienced Professional"},
		{"student", profiles.Profile{CareerStage: "current_student"}, "Student"},
		{"no history", profiles.Profile{}, "First-Time Job Seeker"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.Get(tt.profile).Name(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegistryOrder(t *testing.T) {
	names := []string{}
	for _, s := range NewRegistry().Strategies() {
		names = append(names, s.Name())
	}
	want := []string{
		"Experienced Professional",
		"Experienced Job Seeker",
		"Career Changer",
		"First-Time Job Seeker",
		"Student",
	}
	if len(names) != len(want) {
		t.Fatalf("got %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("registry order changed: got %v", names)
		}
	}
}

func hasReason(reasons []string, want string) bool {
	for _, r := range reasons {
		if r == want {
			return true
		}
	}
	return false
}
