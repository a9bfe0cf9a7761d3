// services/typechart.go
package services

import (
	"slices"

	"github.com/CRYPTON016/pokedex/models"
)

// TypeMatchups is the defensive profile of one type: the attacking types it
// takes 2x, 0.5x and 0x damage from. Absence from all three lists means 1x.
type TypeMatchups struct {
	WeakTo      []string `json:"weakTo"`
	ResistantTo []string `json:"resistantTo"`
	ImmuneTo    []string `json:"immuneTo"`
}

// typeChart keys each defending type to its matchups against all 18 types.
var typeChart = map[string]TypeMatchups{
	"Normal":   {WeakTo: []string{"Fighting"}, ResistantTo: []string{}, ImmuneTo: []string{"Ghost"}},
	"Fire":     {WeakTo: []string{"Water", "Ground", "Rock"}, ResistantTo: []string{"Fire", "Grass", "Ice", "Bug", "Steel", "Fairy"}, ImmuneTo: []string{}},
	"Water":    {WeakTo: []string{"Electric", "Grass"}, ResistantTo: []string{"Fire", "Water", "Ice", "Steel"}, ImmuneTo: []string{}},
	"Electric": {WeakTo: []string{"Ground"}, ResistantTo: []string{"Electric", "Flying", "Steel"}, ImmuneTo: []string{}},
	"Grass":    {WeakTo: []string{"Fire", "Ice", "Poison", "Flying", "Bug"}, ResistantTo: []string{"Water", "Electric", "Grass", "Ground"}, ImmuneTo: []string{}},
	"Ice":      {WeakTo: []string{"Fire", "Fighting", "Rock", "Steel"}, ResistantTo: []string{"Ice"}, ImmuneTo: []string{}},
	"Fighting": {WeakTo: []string{"Flying", "Psychic", "Fairy"}, ResistantTo: []string{"Bug", "Rock", "Dark"}, ImmuneTo: []string{}},
	"Poison":   {WeakTo: []string{"Ground", "Psychic"}, ResistantTo: []string{"Grass", "Fighting", "Poison", "Bug", "Fairy"}, ImmuneTo: []string{}},
	"Ground":   {WeakTo: []string{"Water", "Grass", "Ice"}, ResistantTo: []string{"Poison", "Rock"}, ImmuneTo: []string{"Electric"}},
	"Flying":   {WeakTo: []string{"Electric", "Ice", "Rock"}, ResistantTo: []string{"Grass", "Fighting", "Bug"}, ImmuneTo: []string{"Ground"}},
	"Psychic":  {WeakTo: []string{"Bug", "Ghost", "Dark"}, ResistantTo: []string{"Fighting", "Psychic"}, ImmuneTo: []string{}},
	"Bug":      {WeakTo: []string{"Fire", "Flying", "Rock"}, ResistantTo: []string{"Grass", "Fighting", "Ground"}, ImmuneTo: []string{}},
	"Rock":     {WeakTo: []string{"Water", "Grass", "Fighting", "Ground", "Steel"}, ResistantTo: []string{"Normal", "Fire", "Poison", "Flying"}, ImmuneTo: []string{}},
	"Ghost":    {WeakTo: []string{"Ghost", "Dark"}, ResistantTo: []string{"Poison", "Bug"}, ImmuneTo: []string{"Normal", "Fighting"}},
	"Dragon":   {WeakTo: []string{"Ice", "Dragon", "Fairy"}, ResistantTo: []string{"Fire", "Water", "Electric", "Grass"}, ImmuneTo: []string{}},
	"Dark":     {WeakTo: []string{"Fighting", "Bug", "Fairy"}, ResistantTo: []string{"Ghost", "Dark"}, ImmuneTo: []string{"Psychic"}},
	"Steel":    {WeakTo: []string{"Fire", "Fighting", "Ground"}, ResistantTo: []string{"Normal", "Grass", "Ice", "Flying", "Psychic", "Bug", "Rock", "Dragon", "Steel", "Fairy"}, ImmuneTo: []string{"Poison"}},
	"Fairy":    {WeakTo: []string{"Poison", "Steel"}, ResistantTo: []string{"Fighting", "Bug", "Dark"}, ImmuneTo: []string{"Dragon"}},
}

// Effectiveness returns the damage multiplier when attackingType hits a
// defender of defendingType. Pairs without an explicit chart entry are 1.
func Effectiveness(attackingType, defendingType string) float64 {
	matchups, ok := typeChart[defendingType]
	if !ok {
		return 1
	}
	switch {
	case slices.Contains(matchups.ImmuneTo, attackingType):
		return 0
	case slices.Contains(matchups.WeakTo, attackingType):
		return 2
	case slices.Contains(matchups.ResistantTo, attackingType):
		return 0.5
	}
	return 1
}

// DefensiveProfile classifies all 18 attacking types against a (type1, type2)
// pair. Dual-type multipliers are the product of each slot's own defensive
// multiplier: Water/Ground takes 0x from Electric even though Water alone
// takes 2x.
func DefensiveProfile(type1 string, type2 *string) TypeMatchups {
	profile := TypeMatchups{
		WeakTo:      []string{},
		ResistantTo: []string{},
		ImmuneTo:    []string{},
	}
	for _, attacking := range models.PokemonTypes {
		multiplier := Effectiveness(attacking, type1)
		if type2 != nil && *type2 != "" {
			multiplier *= Effectiveness(attacking, *type2)
		}
		switch {
		case multiplier == 0:
			profile.ImmuneTo = append(profile.ImmuneTo, attacking)
		case multiplier > 1:
			profile.WeakTo = append(profile.WeakTo, attacking)
		case multiplier < 1:
			profile.ResistantTo = append(profile.ResistantTo, attacking)
		}
	}
	return profile
}

// TypeTally counts team members affected by one attacking type.
type TypeTally struct {
	Weak   int `json:"weak"`
	Resist int `json:"resist"`
	Immune int `json:"immune"`
}

// AnalyzeTeam tallies, per attacking type, how many of the roster's type
// slots are weak/resistant/immune to it. Each slot counts independently: a
// dual-type member whose both types are weak to Rock adds two weak counts for
// Rock. That severity weighting is intentional — it mirrors how the team view
// has always scored rosters.
func AnalyzeTeam(team []models.Pokemon) map[string]TypeTally {
	analysis := make(map[string]TypeTally, len(models.PokemonTypes))
	for _, attacking := range models.PokemonTypes {
		tally := TypeTally{}
		for _, member := range team {
			for _, matchups := range memberMatchups(member) {
				switch {
				case slices.Contains(matchups.WeakTo, attacking):
					tally.Weak++
				case slices.Contains(matchups.ResistantTo, attacking):
					tally.Resist++
				case slices.Contains(matchups.ImmuneTo, attacking):
					tally.Immune++
				}
			}
		}
		analysis[attacking] = tally
	}
	return analysis
}

func memberMatchups(member models.Pokemon) []TypeMatchups {
	var slots []TypeMatchups
	if matchups, ok := typeChart[member.Type1]; ok {
		slots = append(slots, matchups)
	}
	if member.Type2 != nil {
		if matchups, ok := typeChart[*member.Type2]; ok {
			slots = append(slots, matchups)
		}
	}
	return slots
}
