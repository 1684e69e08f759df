package builder

import (
	"sort"

	"resume-builder-backend/internal/profiles"
)

const baseConfidence = 0.5

// Registry is the immutable, explicitly-constructed set of strategies.
// Build it once at startup and share it; it is never mutated afterwards.
type Registry struct {
	strategies []Strategy
}

// NewRegistry returns the standard registry. Order matters: first-match
// selection and confidence tie-breaks both follow registration order, and
// the first entry is the catch-all default.
func NewRegistry() Registry {
	return Registry{strategies: []Strategy{
		experiencedProfessional{},
		experiencedJobSeeker{},
		careerChanger{},
		firstTimeJobSeeker{},
		student{},
	}}
}

// Strategies returns the registered strategies in order.
func (r Registry) Strategies() []Strategy {
	out := make([]Strategy, len(r.strategies))
	copy(out, r.strategies)
	return out
}

// Get returns the first applicable strategy in registry order, defaulting to
// the first registered strategy when none match.
func (r Registry) Get(p profiles.Profile) Strategy {
	for _, s := range r.strategies {
		if s.IsApplicable(p) {
			return s
		}
	}
	return r.strategies[0]
}

// Selection is the transient result of a scored strategy pick.
type Selection struct {
	Strategy   Strategy `json:"-"`
	Name       string   `json:"strategy"`
	Confidence float64  `json:"confidence"`
	Reasons    []string `json:"reasons"`
}

// Select scores every strategy against the profile and returns the best
// match. An inapplicable strategy scores 0; an applicable one starts from
// the base confidence and accumulates its bonuses, clamped to [0, 1]. The
// sort is stable, so ties keep registry order. A manual override naming a
// registered strategy bypasses scoring entirely; unknown names are ignored.
func (r Registry) Select(p profiles.Profile, override string) Selection {
	if override != "" {
		for _, s := range r.strategies {
			if s.Name() == override {
				return Selection{
					Strategy:   s,
					Name:       s.Name(),
					Confidence: 1.0,
					Reasons:    []string{"Manual override selected"},
				}
			}
		}
	}

	scored := make([]Selection, 0, len(r.strategies))
	for _, s := range r.strategies {
		sel := Selection{Strategy: s, Name: s.Name(), Reasons: []string{}}
		if s.IsApplicable(p) {
			confidence := baseConfidence
			for _, b := range s.bonuses(p) {
				confidence += b.delta
				sel.Reasons = append(sel.Reasons, b.reason)
			}
			sel.Confidence = clamp01(confidence)
		}
		scored = append(scored, sel)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Confidence > scored[j].Confidence
	})
	return scored[0]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
