// services/analysis_service.go
package services

import (
	"errors"
	"log"
	"strconv"

	"github.com/CRYPTON016/pokedex/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AnalysisService struct {
	DB *gorm.DB
}

func NewAnalysisService(db *gorm.DB) *AnalysisService {
	return &AnalysisService{DB: db}
}

// GetEffectiveness handles GET /analysis/effectiveness/:id — the defensive
// profile of one stored record's type pair.
func (s *AnalysisService) GetEffectiveness(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid pokemon id"})
	}

	var record models.Pokemon
	if err := s.DB.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pokemon not found"})
		}
		log.Printf("[Analysis] record lookup failed for id %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to analyze pokemon"})
	}

	return c.JSON(fiber.Map{"data": DefensiveProfile(record.Type1, record.Type2)})
}

type teamRequest struct {
	IDs []int `json:"ids" validate:"required,min=1,max=6"`
}

// AnalyzeTeamHandler handles POST /analysis/team with up to 6 record ids.
func (s *AnalysisService) AnalyzeTeamHandler(c *fiber.Ctx) error {
	var request teamRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "a team needs between 1 and 6 pokemon ids"})
	}

	// A duplicate id would also trip the length check below and masquerade as
	// a 404, so reject it explicitly.
	seen := make(map[int]struct{}, len(request.IDs))
	for _, id := range request.IDs {
		if _, dup := seen[id]; dup {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "team ids must be distinct"})
		}
		seen[id] = struct{}{}
	}

	var team []models.Pokemon
	if err := s.DB.Where("id IN ?", request.IDs).Find(&team).Error; err != nil {
		log.Printf("[Analysis] team lookup failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to analyze team"})
	}
	if len(team) != len(request.IDs) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "one or more pokemon ids do not exist"})
	}

	return c.JSON(fiber.Map{"data": AnalyzeTeam(team)})
}

// GetBreeding handles GET /analysis/breeding?parent1=&parent2= — egg-group
// compatibility plus hatch estimates for two stored records.
func (s *AnalysisService) GetBreeding(c *fiber.Ctx) error {
	parent1ID, err1 := strconv.Atoi(c.Query("parent1"))
	parent2ID, err2 := strconv.Atoi(c.Query("parent2"))
	if err1 != nil || err2 != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": `parameters "parent1" and "parent2" must be pokemon ids`})
	}
	if parent1ID == parent2ID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "parents must be two different records"})
	}

	var parent1, parent2 models.Pokemon
	if err := s.DB.First(&parent1, "id = ?", parent1ID).Error; err != nil {
		return s.breedingLookupError(c, parent1ID, err)
	}
	if err := s.DB.First(&parent2, "id = ?", parent2ID).Error; err != nil {
		return s.breedingLookupError(c, parent2ID, err)
	}

	result := EvaluateCompatibility(parent1.EggGroups, parent2.EggGroups)
	payload := fiber.Map{
		"compatible":   result.Compatible,
		"viaDitto":     result.ViaDitto,
		"verdict":      result.Verdict,
		"sharedGroups": result.SharedGroups,
	}
	if result.Compatible {
		cycles := EstimateEggCycles(parent1.EggCycles, parent2.EggCycles)
		payload["estimatedEggCycles"] = cycles
		payload["stepsToHatch"] = StepsToHatch(cycles)
	}
	return c.JSON(fiber.Map{"data": payload})
}

func (s *AnalysisService) breedingLookupError(c *fiber.Ctx, id int, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pokemon not found"})
	}
	log.Printf("[Analysis] breeding lookup failed for id %d: %v", id, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to check compatibility"})
}

type predictRequest struct {
	Hp      int `json:"hp" validate:"gte=0,lte=255"`
	Attack  int `json:"attack" validate:"gte=0,lte=255"`
	Defense int `json:"defense" validate:"gte=0,lte=255"`
	SpAtk   int `json:"spAtk" validate:"gte=0,lte=255"`
	SpDef   int `json:"spDef" validate:"gte=0,lte=255"`
	Speed   int `json:"speed" validate:"gte=0,lte=255"`
}

// PredictTypeHandler handles POST /analysis/predict-type.
func (s *AnalysisService) PredictTypeHandler(c *fiber.Ctx) error {
	var request predictRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "stats must be integers between 0 and 255"})
	}

	prediction := PredictType(request.Hp, request.Attack, request.Defense, request.SpAtk, request.SpDef, request.Speed)
	return c.JSON(fiber.Map{"data": prediction})
}
