// models/evolution.go
package models

const (
	TriggerLevel      = "level"
	TriggerItem       = "item"
	TriggerTrade      = "trade"
	TriggerFriendship = "friendship"
	TriggerStone      = "stone"
	TriggerOther      = "other"
)

// EvolutionStep is one stage in an ordered evolution chain. Index is the
// target stage's National Dex number; Trigger/Value describe how the previous
// stage evolves into it (empty on the first stage).
type EvolutionStep struct {
	Index   int    `json:"index"`
	Trigger string `json:"trigger,omitempty"`
	Value   any    `json:"value,omitempty"` // level number or item/condition name
}

// EnrichedEvolutionStep joins a chain step with the stored record for its dex
// index. Steps whose index has no stored record are dropped, not errors.
type EnrichedEvolutionStep struct {
	Step    EvolutionStep `json:"step"`
	Pokemon Pokemon       `json:"pokemon"`
}
