package services

import (
	"fmt"
	"testing"

	"github.com/CRYPTON016/pokedex/models"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveness(t *testing.T) {
	tests := []struct {
		attacking string
		defending string
		want      float64
	}{
		{"Fire", "Grass", 2},
		{"Fire", "Water", 0.5},
		{"Water", "Fire", 2},
		{"Electric", "Ground", 0},
		{"Ground", "Electric", 2},
		{"Normal", "Normal", 1},
		{"Normal", "Ghost", 0},
		{"Ghost", "Normal", 0},
		{"Fighting", "Ghost", 0},
		{"Dragon", "Fairy", 0},
		{"Poison", "Steel", 0},
		{"Ice", "Dragon", 2},
		{"Steel", "Rock", 2},
		{"Bug", "Fighting", 0.5},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_vs_%s", tt.attacking, tt.defending), func(t *testing.T) {
			assert.Equal(t, tt.want, Effectiveness(tt.attacking, tt.defending))
		})
	}
}

func TestEffectivenessUnknownTypeIsNeutral(t *testing.T) {
	assert.Equal(t, 1.0, Effectiveness("Fire", "Shadow"))
	assert.Equal(t, 1.0, Effectiveness("Shadow", "Fire"))
}

func TestDefensiveProfileSingleType(t *testing.T) {
	profile := DefensiveProfile("Normal", nil)

	assert.Equal(t, []string{"Fighting"}, profile.WeakTo)
	assert.Equal(t, []string{"Ghost"}, profile.ImmuneTo)
	assert.Empty(t, profile.ResistantTo)
}

func TestDefensiveProfileDualType(t *testing.T) {
	// Water/Ground: slot multipliers multiply, so the Ground slot's Electric
	// immunity cancels the Water slot's 2x.
	profile := DefensiveProfile("Water", strPtr("Ground"))

	assert.Equal(t, []string{"Electric"}, profile.ImmuneTo)
	assert.Contains(t, profile.WeakTo, "Grass") // 2 x 2 = 4x
	assert.Contains(t, profile.ResistantTo, "Fire")
	assert.NotContains(t, profile.WeakTo, "Normal")
	assert.NotContains(t, profile.ResistantTo, "Normal")
}

func TestDefensiveProfileEmptySecondSlot(t *testing.T) {
	empty := ""
	assert.Equal(t, DefensiveProfile("Fire", nil), DefensiveProfile("Fire", &empty))
}

func TestAnalyzeTeam(t *testing.T) {
	team := []models.Pokemon{
		{Name: "Charizard", Type1: "Fire", Type2: strPtr("Flying")},
		{Name: "Pikachu", Type1: "Electric"},
	}

	analysis := AnalyzeTeam(team)

	// Every attacking type gets an entry, even all-neutral ones.
	assert.Len(t, analysis, len(models.PokemonTypes))

	// Rock hits both of Charizard's slots for a double weak count.
	assert.Equal(t, TypeTally{Weak: 2}, analysis["Rock"])
	// Ground: Fire slot weak, Flying slot immune, Electric slot weak.
	assert.Equal(t, TypeTally{Weak: 2, Immune: 1}, analysis["Ground"])
	// Electric: Flying slot weak, Electric slot resists, Fire slot neutral.
	assert.Equal(t, TypeTally{Weak: 1, Resist: 1}, analysis["Electric"])
}

func TestAnalyzeTeamEmptyRoster(t *testing.T) {
	analysis := AnalyzeTeam(nil)
	assert.Len(t, analysis, len(models.PokemonTypes))
	assert.Equal(t, TypeTally{}, analysis["Fire"])
}
