// services/breeding.go
package services

import (
	"strconv"
	"strings"
)

// BreedingResult is the outcome of an egg-group compatibility check. The
// hatch estimates are only populated when the pair is compatible.
type BreedingResult struct {
	Compatible   bool     `json:"compatible"`
	ViaDitto     bool     `json:"viaDitto"`
	Verdict      string   `json:"verdict"`
	SharedGroups []string `json:"sharedGroups"`
}

// EvaluateCompatibility decides whether two parents can breed from their raw
// comma-joined egg-group strings. Rule precedence is fixed: Undiscovered
// blocks everything (even Undiscovered x Undiscovered), then Ditto matches
// anything remaining, then a shared group is required. Group names compare
// case-insensitively; shared groups are reported lowercased.
func EvaluateCompatibility(eggGroups1, eggGroups2 string) BreedingResult {
	groups1 := splitEggGroups(eggGroups1)
	groups2 := splitEggGroups(eggGroups2)

	var shared []string
	for _, group := range groups1 {
		if containsGroup(groups2, group) {
			shared = append(shared, group)
		}
	}

	switch {
	case containsGroup(groups1, "undiscovered") || containsGroup(groups2, "undiscovered"):
		return BreedingResult{
			Verdict:      "Cannot Breed - Undiscovered Egg Group",
			SharedGroups: []string{},
		}
	case containsGroup(groups1, "ditto") || containsGroup(groups2, "ditto"):
		return BreedingResult{
			Compatible:   true,
			ViaDitto:     true,
			Verdict:      "Compatible - Ditto can breed with most Pokémon!",
			SharedGroups: []string{},
		}
	case len(shared) > 0:
		return BreedingResult{
			Compatible:   true,
			Verdict:      "Compatible - Shared Egg Group(s): " + strings.Join(shared, ", "),
			SharedGroups: shared,
		}
	}
	return BreedingResult{
		Verdict:      "Incompatible - No Shared Egg Groups",
		SharedGroups: []string{},
	}
}

// EstimateEggCycles picks the slower parent's cycle count. Unparseable
// values count as 0.
func EstimateEggCycles(eggCycles1, eggCycles2 string) int {
	c1 := parseEggCycles(eggCycles1)
	c2 := parseEggCycles(eggCycles2)
	if c1 > c2 {
		return c1
	}
	return c2
}

// StepsToHatch converts egg cycles to the in-game step estimate.
func StepsToHatch(eggCycles int) int {
	return eggCycles * 257
}

func splitEggGroups(raw string) []string {
	parts := strings.Split(strings.ToLower(raw), ",")
	groups := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			groups = append(groups, trimmed)
		}
	}
	return groups
}

func containsGroup(groups []string, name string) bool {
	for _, group := range groups {
		if group == name {
			return true
		}
	}
	return false
}

func parseEggCycles(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}
