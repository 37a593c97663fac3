// Package skills defines the canonical skill vocabulary and the
// deterministic pattern-based extractor used when LLM extraction is
// unavailable or returns malformed output.
package skills

import "strings"

// MaxSkills caps every extracted or normalized skill list.
const MaxSkills = 30

// Normalize converts a free-text skill mention into its canonical id:
// lowercase, trimmed, spaces replaced with hyphens.
// Returns "" for blank input.
func Normalize(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return ""
	}
	return strings.ReplaceAll(s, " ", "-")
}

// NormalizeAll normalizes and deduplicates a list of skill mentions,
// preserving first-occurrence order and capping at MaxSkills.
func NormalizeAll(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		id := Normalize(s)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
		if len(out) == MaxSkills {
			break
		}
	}
	return out
}

// Fold reduces a skill id to its comparison form: lowercase with
// hyphens and underscores removed. "ci-cd", "ci_cd" and "CICD" all
// fold to "cicd".
func Fold(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, "_", "")
}

// FoldSet builds a lookup set of folded skill ids.
func FoldSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[Fold(id)] = true
	}
	return set
}

// Contains reports whether the folded set holds the given skill.
func Contains(foldSet map[string]bool, skill string) bool {
	return foldSet[Fold(skill)]
}
