// services/movedata.go
package services

import "github.com/CRYPTON016/pokedex/models"

// Learnsets keyed by National Dex index.
var learnsets = map[int][]models.PokemonMove{
	1: {
		{Name: "Tackle", Method: models.MethodLevelUp, Level: 1},
		{Name: "Growl", Method: models.MethodLevelUp, Level: 3},
		{Name: "Leech Seed", Method: models.MethodLevelUp, Level: 7},
		{Name: "Vine Whip", Method: models.MethodLevelUp, Level: 9},
	},
	4: {
		{Name: "Scratch", Method: models.MethodLevelUp, Level: 1},
		{Name: "Ember", Method: models.MethodLevelUp, Level: 7},
		{Name: "Smokescreen", Method: models.MethodLevelUp, Level: 10},
		{Name: "Flamethrower", Method: models.MethodTM, Detail: "TM35"},
	},
	7: {
		{Name: "Tackle", Method: models.MethodLevelUp, Level: 1},
		{Name: "Bubble", Method: models.MethodLevelUp, Level: 4},
		{Name: "Withdraw", Method: models.MethodLevelUp, Level: 7},
		{Name: "Surf", Method: models.MethodTM, Detail: "HM03/TM??"},
	},
	25: {
		{Name: "Thunder Shock", Method: models.MethodLevelUp, Level: 1},
		{Name: "Quick Attack", Method: models.MethodLevelUp, Level: 11},
		{Name: "Thunderbolt", Method: models.MethodTM, Detail: "TM24"},
	},
	133: {
		{Name: "Tackle", Method: models.MethodLevelUp, Level: 1},
		{Name: "Bite", Method: models.MethodLevelUp, Level: 5},
		{Name: "Swift", Method: models.MethodTM, Detail: "TM??"},
	},
}

// MovesForDex returns the learnset for a dex index; unknown indexes get an
// empty list.
func MovesForDex(dexIndex int) []models.PokemonMove {
	if moves, ok := learnsets[dexIndex]; ok {
		return moves
	}
	return []models.PokemonMove{}
}
