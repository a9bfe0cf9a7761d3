// services/stats_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/CRYPTON016/pokedex/cache"
	"github.com/CRYPTON016/pokedex/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	statsCacheTTL = time.Hour
	topCacheTTL   = 5 * time.Minute
)

// ErrNoPokemonOfType signals an average over an empty set; callers must not
// see a zero-filled result pretending to be a mean.
var ErrNoPokemonOfType = errors.New("no pokemon with that type1")

// ErrUnknownStat rejects stat names outside the fixed set.
var ErrUnknownStat = errors.New("unknown stat name")

// statColumns whitelists sortable stat columns. Query fragments are built
// from the mapped value, never from caller input.
var statColumns = map[string]string{
	"hp":      "hp",
	"attack":  "attack",
	"defense": "defense",
	"spatk":   "sp_atk",
	"sp_atk":  "sp_atk",
	"spdef":   "sp_def",
	"sp_def":  "sp_def",
	"speed":   "speed",
	"total":   "total",
}

type StatsService struct {
	DB    *gorm.DB
	Cache cache.Store
}

func NewStatsService(db *gorm.DB, store cache.Store) *StatsService {
	return &StatsService{DB: db, Cache: store}
}

// TypeAverages is the arithmetic mean of each base stat over one type1 group.
type TypeAverages struct {
	AvgHp      float64 `json:"avgHp"`
	AvgAttack  float64 `json:"avgAttack"`
	AvgDefense float64 `json:"avgDefense"`
	AvgSpAtk   float64 `json:"avgSpAtk"`
	AvgSpDef   float64 `json:"avgSpDef"`
	AvgSpeed   float64 `json:"avgSpeed"`
}

// TypeCount is one entry of the type-distribution mapping. No ordering is
// guaranteed to callers.
type TypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// AveragesForType computes per-stat means over records whose type1 matches
// exactly. Returns ErrNoPokemonOfType when the group is empty.
func (s *StatsService) AveragesForType(typeName string) (*TypeAverages, error) {
	var count int64
	if err := s.DB.Model(&models.Pokemon{}).Where("type1 = ?", typeName).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to count type %s: %w", typeName, err)
	}
	if count == 0 {
		return nil, ErrNoPokemonOfType
	}

	var averages TypeAverages
	err := s.DB.Model(&models.Pokemon{}).
		Select(`AVG(hp) AS avg_hp, AVG(attack) AS avg_attack, AVG(defense) AS avg_defense,
			AVG(sp_atk) AS avg_sp_atk, AVG(sp_def) AS avg_sp_def, AVG(speed) AS avg_speed`).
		Where("type1 = ?", typeName).
		Scan(&averages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to average type %s: %w", typeName, err)
	}
	return &averages, nil
}

// Distribution returns the record count per distinct type1.
func (s *StatsService) Distribution() ([]TypeCount, error) {
	distribution := []TypeCount{}
	err := s.DB.Model(&models.Pokemon{}).
		Select("type1 AS type, COUNT(*) AS count").
		Group("type1").
		Scan(&distribution).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute type distribution: %w", err)
	}
	return distribution, nil
}

// TopByStat returns the limit highest records for one stat, descending, ties
// broken by ascending id. Unrecognized stat names fail fast — silently
// ranking by some default would hand the caller the wrong leaderboard.
func (s *StatsService) TopByStat(stat string, limit int) ([]models.Pokemon, error) {
	column, ok := statColumns[strings.ToLower(stat)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStat, stat)
	}

	records := []models.Pokemon{}
	err := s.DB.Model(&models.Pokemon{}).
		Order(column + " DESC, id ASC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank by %s: %w", stat, err)
	}
	return records, nil
}

// GetStats handles GET /pokemon/stats. With ?type= it returns that type's
// averages; without it, the full type distribution.
func (s *StatsService) GetStats(c *fiber.Ctx) error {
	typeName := c.Query("type")

	if typeName != "" {
		key := "pokemon:stats:type:" + typeName
		if raw, ok := s.Cache.Get(key); ok {
			return sendJSON(c, raw)
		}

		averages, err := s.AveragesForType(typeName)
		if errors.Is(err, ErrNoPokemonOfType) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": fmt.Sprintf("no pokemon with type1 %q", typeName)})
		}
		if err != nil {
			log.Printf("[Stats] averages query failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch stats"})
		}

		raw, err := json.Marshal(averages)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch stats"})
		}
		s.Cache.Set(key, raw, statsCacheTTL)
		return sendJSON(c, raw)
	}

	key := "pokemon:stats:distribution"
	if raw, ok := s.Cache.Get(key); ok {
		return sendJSON(c, raw)
	}

	distribution, err := s.Distribution()
	if err != nil {
		log.Printf("[Stats] distribution query failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch stats"})
	}

	raw, err := json.Marshal(fiber.Map{"typeDistribution": distribution})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch stats"})
	}
	s.Cache.Set(key, raw, statsCacheTTL)
	return sendJSON(c, raw)
}

// GetTopPokemon handles GET /pokemon/top?stat=&limit=.
func (s *StatsService) GetTopPokemon(c *fiber.Ctx) error {
	stat := c.Query("stat", "attack")

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": `parameter "limit" must be an integer between 1 and 100`})
		}
		limit = parsed
	}

	key := fmt.Sprintf("pokemon:top:%s:limit=%d", strings.ToLower(stat), limit)
	if raw, ok := s.Cache.Get(key); ok {
		return sendJSON(c, raw)
	}

	records, err := s.TopByStat(stat, limit)
	if errors.Is(err, ErrUnknownStat) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("unknown stat %q", stat)})
	}
	if err != nil {
		log.Printf("[Stats] top query failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch top pokemon"})
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch top pokemon"})
	}
	s.Cache.Set(key, raw, topCacheTTL)
	return sendJSON(c, raw)
}
