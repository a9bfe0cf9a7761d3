// models/pokemon.go
package models

import "time"

// The 18 canonical type names. type1 is always one of these; type2 may be null.
var PokemonTypes = []string{
	"Normal", "Fire", "Water", "Electric", "Grass", "Ice",
	"Fighting", "Poison", "Ground", "Flying", "Psychic", "Bug",
	"Rock", "Ghost", "Dragon", "Dark", "Steel", "Fairy",
}

// Pokemon mirrors one row of the imported dataset CSV. Rows are only ever
// written by the bulk import (delete-all + batch insert); every other
// component treats them as read-only.
type Pokemon struct {
	ID      int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Pokemon string `json:"pokemon"` // raw species slug, e.g. "bulbasaur"
	Type    string `json:"type"`    // combined type string as it appears in the CSV
	Species string `json:"species"`

	// 📏 Descriptive fields (unit-suffixed strings, kept verbatim from the CSV)
	Height         string `json:"height"`
	Weight         string `json:"weight"`
	Abilities      string `json:"abilities"`
	EvYield        string `json:"evYield"`
	CatchRate      string `json:"catchRate"`
	BaseFriendship string `json:"baseFriendship"`
	BaseExp        string `json:"baseExp"`
	GrowthRate     string `json:"growthRate"`

	// 🥚 Breeding fields
	EggGroups string `json:"eggGroups"` // comma-joined group names, e.g. "Water 1, Field"
	Gender    string `json:"gender"`
	EggCycles string `json:"eggCycles"`

	// Per-stat base/min/max triples as shipped in the dataset (min/max are the
	// precomputed level-100 bounds; the stat-range calculator reproduces them)
	HpBase             int `json:"hpBase"`
	HpMin              int `json:"hpMin"`
	HpMax              int `json:"hpMax"`
	AttackBase         int `json:"attackBase"`
	AttackMin          int `json:"attackMin"`
	AttackMax          int `json:"attackMax"`
	DefenseBase        int `json:"defenseBase"`
	DefenseMin         int `json:"defenseMin"`
	DefenseMax         int `json:"defenseMax"`
	SpecialAttackBase  int `json:"specialAttackBase"`
	SpecialAttackMin   int `json:"specialAttackMin"`
	SpecialAttackMax   int `json:"specialAttackMax"`
	SpecialDefenseBase int `json:"specialDefenseBase"`
	SpecialDefenseMin  int `json:"specialDefenseMin"`
	SpecialDefenseMax  int `json:"specialDefenseMax"`
	SpeedBase          int `json:"speedBase"`
	SpeedMin           int `json:"speedMin"`
	SpeedMax           int `json:"speedMax"`

	// Two placeholder columns carried over from the source spreadsheet
	Unnamed32 *string `json:"unnamed32"`
	Unnamed33 *string `json:"unnamed33"`

	Image string `json:"image"`

	// Index is the National Dex number. NOT unique — regional/alternate forms
	// share it. It is the join key into the evolution and move tables.
	Index int     `json:"index" gorm:"column:index;index"`
	Name  string  `json:"name"`
	Type1 string  `json:"type1" gorm:"index"`
	Type2 *string `json:"type2"`

	// Total is imported as-is, never recomputed. A row where it differs from
	// the sum of the six stats is a data-entry error in the CSV.
	Total   int `json:"total"`
	Hp      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	SpAtk   int `json:"spAtk" gorm:"column:sp_atk"`
	SpDef   int `json:"spDef" gorm:"column:sp_def"`
	Speed   int `json:"speed"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Pokemon) TableName() string { return "pokemon" }
