// services/evolution_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/CRYPTON016/pokedex/cache"
	"github.com/CRYPTON016/pokedex/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const evolutionCacheTTL = time.Hour

type EvolutionService struct {
	DB    *gorm.DB
	Cache cache.Store
}

func NewEvolutionService(db *gorm.DB, store cache.Store) *EvolutionService {
	return &EvolutionService{DB: db, Cache: store}
}

// ChainForRecord assembles the enriched evolution chain for one stored
// record: its dex index selects the chain, then each step's index joins back
// to a stored record. Steps without a stored record are dropped. Both "no
// chain" and "no joinable steps" come back as empty lists.
func (s *EvolutionService) ChainForRecord(record models.Pokemon) ([]models.EnrichedEvolutionStep, error) {
	steps := EvolutionChainForDex(record.Index)
	enriched := []models.EnrichedEvolutionStep{}
	if len(steps) == 0 {
		return enriched, nil
	}

	indices := make([]int, 0, len(steps))
	for _, step := range steps {
		indices = append(indices, step.Index)
	}

	var rows []models.Pokemon
	err := s.DB.Where(`"index" IN ?`, indices).Order(`"index" ASC, id ASC`).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve evolution targets: %w", err)
	}

	// Forms share a dex index; the lowest id wins the join.
	byIndex := make(map[int]models.Pokemon, len(rows))
	for _, row := range rows {
		if _, seen := byIndex[row.Index]; !seen {
			byIndex[row.Index] = row
		}
	}

	for _, step := range steps {
		target, ok := byIndex[step.Index]
		if !ok {
			continue
		}
		enriched = append(enriched, models.EnrichedEvolutionStep{Step: step, Pokemon: target})
	}
	return enriched, nil
}

// GetEvolutions handles GET /pokemon/evolutions/:id.
func (s *EvolutionService) GetEvolutions(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid pokemon id"})
	}

	key := fmt.Sprintf("pokemon:evolutions:%d", id)
	if raw, ok := s.Cache.Get(key); ok {
		return sendJSON(c, raw)
	}

	var record models.Pokemon
	if err := s.DB.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pokemon not found"})
		}
		log.Printf("[Evolutions] record lookup failed for id %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch evolutions"})
	}

	enriched, err := s.ChainForRecord(record)
	if err != nil {
		log.Printf("[Evolutions] chain assembly failed for id %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch evolutions"})
	}

	raw, err := json.Marshal(fiber.Map{"data": enriched})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch evolutions"})
	}
	s.Cache.Set(key, raw, evolutionCacheTTL)
	return sendJSON(c, raw)
}

// GetMovesForIndex handles GET /moves/:index. The learnset table is static,
// so no service state is needed.
func GetMovesForIndex(c *fiber.Ctx) error {
	dexIndex, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid dex index"})
	}
	return c.JSON(fiber.Map{"data": MovesForDex(dexIndex)})
}
