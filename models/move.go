// models/move.go
package models

const (
	MethodLevelUp = "level-up"
	MethodTM      = "tm"
	MethodEgg     = "egg"
	MethodTutor   = "tutor"
	MethodMachine = "machine"
	MethodOther   = "other"
)

// PokemonMove is one learnset entry for a dex index.
type PokemonMove struct {
	Name   string `json:"name"`
	Method string `json:"method"`
	Level  int    `json:"level,omitempty"`
	Detail string `json:"detail,omitempty"` // free text, e.g. "TM35"
}
