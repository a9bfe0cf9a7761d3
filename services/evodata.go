// services/evodata.go
package services

import "github.com/CRYPTON016/pokedex/models"

// Evolution chains are stored once per family, earliest stage first, and a
// dex→family index maps every member to its chain. Keying the full chain
// under each member (as the dataset's source material does) duplicates the
// data and invites drift between copies.
var evolutionFamilies = map[string][]models.EvolutionStep{
	"bulbasaur": {
		{Index: 1},
		{Index: 2, Trigger: models.TriggerLevel, Value: 16},
		{Index: 3, Trigger: models.TriggerLevel, Value: 32},
	},
	"charmander": {
		{Index: 4},
		{Index: 5, Trigger: models.TriggerLevel, Value: 16},
		{Index: 6, Trigger: models.TriggerLevel, Value: 36},
	},
	"squirtle": {
		{Index: 7},
		{Index: 8, Trigger: models.TriggerLevel, Value: 16},
		{Index: 9, Trigger: models.TriggerLevel, Value: 36},
	},
	"caterpie": {
		{Index: 10},
		{Index: 11, Trigger: models.TriggerLevel, Value: 7},
		{Index: 12, Trigger: models.TriggerLevel, Value: 10},
	},
	"pichu": {
		{Index: 172},
		{Index: 25, Trigger: models.TriggerFriendship, Value: "high"},
		{Index: 26, Trigger: models.TriggerStone, Value: "Thunder Stone"},
	},
	// Branched family: every eeveelution maps to the one canonical chain.
	"eevee": {
		{Index: 133},
		{Index: 134, Trigger: models.TriggerStone, Value: "Water Stone"},
		{Index: 135, Trigger: models.TriggerStone, Value: "Thunder Stone"},
		{Index: 136, Trigger: models.TriggerStone, Value: "Fire Stone"},
	},
}

var dexToFamily = map[int]string{}

func init() {
	for family, steps := range evolutionFamilies {
		for _, step := range steps {
			dexToFamily[step.Index] = family
		}
	}
}

// EvolutionChainForDex returns the ordered chain the dex index belongs to, or
// an empty slice when its family is unknown ("no evolutions" is a valid
// state, not an error).
func EvolutionChainForDex(dexIndex int) []models.EvolutionStep {
	family, ok := dexToFamily[dexIndex]
	if !ok {
		return []models.EvolutionStep{}
	}
	return evolutionFamilies[family]
}
