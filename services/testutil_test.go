package services

import (
	"testing"
	"time"

	"github.com/CRYPTON016/pokedex/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// newTestDB opens a private in-memory SQLite database. The pool is pinned to a
// single connection — each SQLite :memory: connection is its own database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Pokemon{}))
	return db
}

// fixtureRecords is a small but representative dataset: three evolution lines,
// a shared-index form pair (Charizard and its Mega), a Ditto, an Undiscovered
// legendary and a plain single-stage record.
func fixtureRecords() []models.Pokemon {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	return []models.Pokemon{
		{ID: 1, Index: 1, Name: "Bulbasaur", Pokemon: "bulbasaur", Type1: "Grass", Type2: strPtr("Poison"),
			EggGroups: "Monster, Grass", EggCycles: "20",
			Total: 318, Hp: 45, Attack: 49, Defense: 49, SpAtk: 65, SpDef: 65, Speed: 45,
			CreatedAt: now, UpdatedAt: now},
		{ID: 2, Index: 2, Name: "Ivysaur", Pokemon: "ivysaur", Type1: "Grass", Type2: strPtr("Poison"),
			EggGroups: "Monster, Grass", EggCycles: "20",
			Total: 405, Hp: 60, Attack: 62, Defense: 63, SpAtk: 80, SpDef: 80, Speed: 60,
			CreatedAt: now, UpdatedAt: now},
		{ID: 3, Index: 3, Name: "Venusaur", Pokemon: "venusaur", Type1: "Grass", Type2: strPtr("Poison"),
			EggGroups: "Monster, Grass", EggCycles: "20",
			Total: 525, Hp: 80, Attack: 82, Defense: 83, SpAtk: 100, SpDef: 100, Speed: 80,
			CreatedAt: now, UpdatedAt: now},
		{ID: 4, Index: 4, Name: "Charmander", Pokemon: "charmander", Type1: "Fire",
			EggGroups: "Monster, Dragon", EggCycles: "20",
			Total: 309, Hp: 39, Attack: 52, Defense: 43, SpAtk: 60, SpDef: 50, Speed: 65,
			CreatedAt: now, UpdatedAt: now},
		{ID: 5, Index: 25, Name: "Pikachu", Pokemon: "pikachu", Type1: "Electric",
			EggGroups: "Field, Fairy", EggCycles: "10",
			Total: 320, Hp: 35, Attack: 55, Defense: 40, SpAtk: 50, SpDef: 50, Speed: 90,
			CreatedAt: now, UpdatedAt: now},
		{ID: 6, Index: 26, Name: "Raichu", Pokemon: "raichu", Type1: "Electric",
			EggGroups: "Field, Fairy", EggCycles: "10",
			Total: 485, Hp: 60, Attack: 90, Defense: 55, SpAtk: 90, SpDef: 80, Speed: 110,
			CreatedAt: now, UpdatedAt: now},
		{ID: 7, Index: 6, Name: "Charizard", Pokemon: "charizard", Type1: "Fire", Type2: strPtr("Flying"),
			EggGroups: "Monster, Dragon", EggCycles: "20",
			Total: 534, Hp: 78, Attack: 84, Defense: 78, SpAtk: 109, SpDef: 85, Speed: 100,
			CreatedAt: now, UpdatedAt: now},
		{ID: 8, Index: 6, Name: "Mega Charizard X", Pokemon: "charizard", Type1: "Fire", Type2: strPtr("Dragon"),
			EggGroups: "Monster, Dragon", EggCycles: "20",
			Total: 634, Hp: 78, Attack: 130, Defense: 111, SpAtk: 130, SpDef: 85, Speed: 100,
			CreatedAt: now, UpdatedAt: now},
		{ID: 9, Index: 132, Name: "Ditto", Pokemon: "ditto", Type1: "Normal",
			EggGroups: "Ditto", EggCycles: "20",
			Total: 288, Hp: 48, Attack: 48, Defense: 48, SpAtk: 48, SpDef: 48, Speed: 48,
			CreatedAt: now, UpdatedAt: now},
		{ID: 10, Index: 144, Name: "Articuno", Pokemon: "articuno", Type1: "Ice", Type2: strPtr("Flying"),
			EggGroups: "Undiscovered", EggCycles: "80",
			Total: 580, Hp: 90, Attack: 85, Defense: 100, SpAtk: 95, SpDef: 125, Speed: 85,
			CreatedAt: now, UpdatedAt: now},
		{ID: 11, Index: 129, Name: "Magikarp", Pokemon: "magikarp", Type1: "Water",
			EggGroups: "Water 1, Dragon", EggCycles: "5",
			Total: 200, Hp: 20, Attack: 10, Defense: 55, SpAtk: 15, SpDef: 20, Speed: 80,
			CreatedAt: now, UpdatedAt: now},
	}
}

func seedTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	records := fixtureRecords()
	require.NoError(t, db.Create(&records).Error)
}

// recordIDs projects a result set onto ids, preserving order.
func recordIDs(records []models.Pokemon) []int {
	ids := make([]int, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}
	return ids
}
