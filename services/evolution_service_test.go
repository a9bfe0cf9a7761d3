package services

import (
	"testing"

	"github.com/CRYPTON016/pokedex/cache"
	"github.com/CRYPTON016/pokedex/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvolutionService(t *testing.T) *EvolutionService {
	t.Helper()
	db := newTestDB(t)
	seedTestDB(t, db)
	return NewEvolutionService(db, cache.NewMemory())
}

func fetchRecord(t *testing.T, service *EvolutionService, id int) models.Pokemon {
	t.Helper()
	var record models.Pokemon
	require.NoError(t, service.DB.First(&record, "id = ?", id).Error)
	return record
}

func TestEvolutionChainForDex(t *testing.T) {
	// Any member of a family resolves the same full chain, earliest first.
	for _, dexIndex := range []int{172, 25, 26} {
		chain := EvolutionChainForDex(dexIndex)
		require.Len(t, chain, 3)
		assert.Equal(t, 172, chain[0].Index)
		assert.Equal(t, 26, chain[2].Index)
	}

	assert.Empty(t, EvolutionChainForDex(600))
	assert.NotNil(t, EvolutionChainForDex(600))
}

func TestChainForRecordFullFamily(t *testing.T) {
	service := newEvolutionService(t)
	bulbasaur := fetchRecord(t, service, 1)

	enriched, err := service.ChainForRecord(bulbasaur)
	require.NoError(t, err)
	require.Len(t, enriched, 3)

	assert.Equal(t, "Bulbasaur", enriched[0].Pokemon.Name)
	assert.Equal(t, "Ivysaur", enriched[1].Pokemon.Name)
	assert.Equal(t, "Venusaur", enriched[2].Pokemon.Name)

	// The base stage carries no trigger; later stages do.
	assert.Empty(t, enriched[0].Step.Trigger)
	assert.Equal(t, models.TriggerLevel, enriched[1].Step.Trigger)
}

func TestChainForRecordDropsUnstoredSteps(t *testing.T) {
	service := newEvolutionService(t)
	pikachu := fetchRecord(t, service, 5)

	// Pichu (172) belongs to the chain but has no stored record.
	enriched, err := service.ChainForRecord(pikachu)
	require.NoError(t, err)
	require.Len(t, enriched, 2)
	assert.Equal(t, "Pikachu", enriched[0].Pokemon.Name)
	assert.Equal(t, "Raichu", enriched[1].Pokemon.Name)
}

func TestChainForRecordLowestIDWinsSharedIndex(t *testing.T) {
	service := newEvolutionService(t)
	charmander := fetchRecord(t, service, 4)

	// Charmeleon (5) is not stored; index 6 has two forms and the lower id
	// (the base Charizard) must be the one joined in.
	enriched, err := service.ChainForRecord(charmander)
	require.NoError(t, err)
	require.Len(t, enriched, 2)
	assert.Equal(t, "Charmander", enriched[0].Pokemon.Name)
	assert.Equal(t, "Charizard", enriched[1].Pokemon.Name)
	assert.Equal(t, 7, enriched[1].Pokemon.ID)
}

func TestChainForRecordNoFamily(t *testing.T) {
	service := newEvolutionService(t)
	magikarp := fetchRecord(t, service, 11)

	enriched, err := service.ChainForRecord(magikarp)
	require.NoError(t, err)
	assert.NotNil(t, enriched)
	assert.Empty(t, enriched)
}

func TestMovesForDex(t *testing.T) {
	moves := MovesForDex(1)
	require.Len(t, moves, 4)
	assert.Equal(t, "Tackle", moves[0].Name)
	assert.Equal(t, models.MethodLevelUp, moves[0].Method)

	unknown := MovesForDex(600)
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)
}
