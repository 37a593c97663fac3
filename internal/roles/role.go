// Package roles holds the curated target-role profiles: which skills a
// role requires, at what level, and with what category weight.
package roles

import "github.com/abhisek/pathfinder/internal/skills"

// Category weights for the readiness score. They must sum to 1.0.
const (
	WeightCore  = 0.6
	WeightOther = 0.3
	WeightSoft  = 0.1
)

// Requirement is a single required skill within a role profile.
type Requirement struct {
	SkillID       string
	RequiredLevel int // 1 (familiar) to 3 (strong)
	Weight        float64
}

// Profile describes a target role's skill requirements, partitioned
// into core technical, other technical, and soft skills. Requirement
// order within each list is the learning-priority order.
type Profile struct {
	Key   string // canonical id, e.g. "data-scientist"
	Name  string // display name, e.g. "Data Scientist"
	Core  []Requirement
	Other []Requirement
	Soft  []Requirement
}

// RequiredSkillIDs returns the core and other technical skill ids in
// profile order. Soft skills are excluded: they are scored but never
// become roadmap gaps.
func (p *Profile) RequiredSkillIDs() []string {
	ids := make([]string, 0, len(p.Core)+len(p.Other))
	for _, r := range p.Core {
		ids = append(ids, r.SkillID)
	}
	for _, r := range p.Other {
		ids = append(ids, r.SkillID)
	}
	return ids
}

// TechnicalRequirements returns core followed by other requirements,
// preserving profile order.
func (p *Profile) TechnicalRequirements() []Requirement {
	reqs := make([]Requirement, 0, len(p.Core)+len(p.Other))
	reqs = append(reqs, p.Core...)
	return append(reqs, p.Other...)
}

func req(skillID string, level int, weight float64) Requirement {
	return Requirement{SkillID: skillID, RequiredLevel: level, Weight: weight}
}

// Find resolves a role by key or human-readable name ("Data Scientist"
// and "data-scientist" both work). The second return is false when no
// curated profile exists; callers then fall back to AI-only gap
// analysis.
func Find(role string) (Profile, bool) {
	key := skills.Normalize(role)
	for i := range catalog {
		if catalog[i].Key == key || skills.Fold(catalog[i].Key) == skills.Fold(key) {
			return catalog[i], true
		}
	}
	return Profile{}, false
}

// All returns every curated profile in catalog order.
func All() []Profile {
	out := make([]Profile, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns the display names of all curated roles, for menus and
// validation messages.
func Names() []string {
	names := make([]string, len(catalog))
	for i := range catalog {
		names[i] = catalog[i].Name
	}
	return names
}
