// services/pokemon_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/CRYPTON016/pokedex/cache"
	"github.com/CRYPTON016/pokedex/models"
	"github.com/CRYPTON016/pokedex/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

var validate = validator.New()

var titleCaser = cases.Title(language.English)

const (
	listCacheTTL   = 10 * time.Second
	detailCacheTTL = 60 * time.Second
	rangesCacheTTL = time.Hour
)

type PokemonService struct {
	DB    *gorm.DB
	Cache cache.Store
}

func NewPokemonService(db *gorm.DB, store cache.Store) *PokemonService {
	return &PokemonService{DB: db, Cache: store}
}

// ListResult is the list-endpoint envelope.
type ListResult struct {
	Data       []models.Pokemon  `json:"data"`
	Pagination models.Pagination `json:"pagination"`
}

// List runs the filter/sort/page pipeline for the given criteria. Results are
// ordered by dex index ascending, id ascending as the tie-break so shared-index
// forms come out deterministically.
func (s *PokemonService) List(criteria models.ListCriteria) (*ListResult, error) {
	var total int64
	if err := s.filteredQuery(criteria).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count pokemon: %w", err)
	}

	offset := (criteria.Page - 1) * criteria.Limit
	records := []models.Pokemon{}
	err := s.filteredQuery(criteria).
		Order(`"index" ASC, id ASC`).
		Limit(criteria.Limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pokemon: %w", err)
	}

	return &ListResult{
		Data: records,
		Pagination: models.Pagination{
			Page:       criteria.Page,
			Limit:      criteria.Limit,
			Total:      total,
			TotalPages: int(math.Ceil(float64(total) / float64(criteria.Limit))),
		},
	}, nil
}

// filteredQuery translates the criteria into a fresh GORM query. All supplied
// conditions AND together.
func (s *PokemonService) filteredQuery(criteria models.ListCriteria) *gorm.DB {
	query := s.DB.Model(&models.Pokemon{})

	if criteria.Search != "" {
		pattern := "%" + strings.ToLower(criteria.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(pokemon) LIKE ?", pattern, pattern)
	}
	if criteria.Type1 != "" {
		query = query.Where("type1 = ?", criteria.Type1)
	}
	if criteria.Type2 != "" {
		query = query.Where("type2 = ?", criteria.Type2)
	}
	if criteria.EggGroup != "" {
		// Substring match over the raw comma-joined string: "Water" matches
		// "Water 1" and "Water 2" too. Documented behavior, not set membership.
		query = query.Where("LOWER(egg_groups) LIKE ?", "%"+strings.ToLower(criteria.EggGroup)+"%")
	}

	query = statRangeCondition(query, "hp", criteria.MinHp, criteria.MaxHp)
	query = statRangeCondition(query, "attack", criteria.MinAttack, criteria.MaxAttack)
	query = statRangeCondition(query, "defense", criteria.MinDefense, criteria.MaxDefense)
	query = statRangeCondition(query, "speed", criteria.MinSpeed, criteria.MaxSpeed)

	return query
}

// statRangeCondition adds inclusive bounds for one stat column. Bounds at the
// stat's natural limits (0 and 255) are always-true and skipped.
func statRangeCondition(query *gorm.DB, column string, min, max *int) *gorm.DB {
	if min != nil && *min > 0 {
		query = query.Where(column+" >= ?", *min)
	}
	if max != nil && *max < 255 {
		query = query.Where(column+" <= ?", *max)
	}
	return query
}

// GetPokemonList handles GET /pokemon with search/filter/pagination params.
func (s *PokemonService) GetPokemonList(c *fiber.Ctx) error {
	criteria, err := parseListCriteria(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(criteria); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid query parameters",
			"details": validationDetails(err),
		})
	}

	key := criteria.CacheKey()
	if raw, ok := s.Cache.Get(key); ok {
		return sendJSON(c, raw)
	}

	result, err := s.List(criteria)
	if err != nil {
		log.Printf("[Pokemon] list query failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch pokemon"})
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch pokemon"})
	}
	s.Cache.Set(key, raw, listCacheTTL)
	return sendJSON(c, raw)
}

// GetPokemonByID handles GET /pokemon/:id.
func (s *PokemonService) GetPokemonByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid pokemon id"})
	}

	key := fmt.Sprintf("pokemon:id:%d", id)
	if raw, ok := s.Cache.Get(key); ok {
		return sendJSON(c, raw)
	}

	var record models.Pokemon
	if err := s.DB.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pokemon not found"})
		}
		log.Printf("[Pokemon] detail query failed for id %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch pokemon"})
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch pokemon"})
	}
	s.Cache.Set(key, raw, detailCacheTTL)
	return sendJSON(c, raw)
}

// StatRangeSet holds the level-100 bounds for all six stats of one record.
type StatRangeSet struct {
	Hp      StatRange `json:"hp"`
	Attack  StatRange `json:"attack"`
	Defense StatRange `json:"defense"`
	SpAtk   StatRange `json:"spAtk"`
	SpDef   StatRange `json:"spDef"`
	Speed   StatRange `json:"speed"`
}

// GetStatRanges handles GET /pokemon/:id/stat-ranges.
func (s *PokemonService) GetStatRanges(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid pokemon id"})
	}

	key := fmt.Sprintf("pokemon:stat-ranges:%d", id)
	if raw, ok := s.Cache.Get(key); ok {
		return sendJSON(c, raw)
	}

	var record models.Pokemon
	if err := s.DB.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pokemon not found"})
		}
		log.Printf("[Pokemon] stat-ranges query failed for id %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch pokemon"})
	}

	payload := fiber.Map{"data": StatRangeSet{
		Hp:      CalculateStatRange(record.Hp, true),
		Attack:  CalculateStatRange(record.Attack, false),
		Defense: CalculateStatRange(record.Defense, false),
		SpAtk:   CalculateStatRange(record.SpAtk, false),
		SpDef:   CalculateStatRange(record.SpDef, false),
		Speed:   CalculateStatRange(record.Speed, false),
	}}

	raw, err := json.Marshal(payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch pokemon"})
	}
	s.Cache.Set(key, raw, rangesCacheTTL)
	return sendJSON(c, raw)
}

// ImportCSV handles POST /pokemon/import-csv: a destructive full-table
// replace. The previous dataset is wiped before the new rows land, so a
// concurrent read during the window may see an empty or partial collection —
// run imports from a single maintenance task.
func (s *PokemonService) ImportCSV(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file uploaded"})
	}

	batchID := uuid.NewString()
	localPath := utils.GetUploadPath(filepath.Join("imports", batchID+".csv"))
	if err := utils.SaveFile(fileHeader, localPath); err != nil {
		log.Printf("[Import] failed to save upload: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save uploaded file"})
	}

	content, err := os.ReadFile(localPath)
	if err != nil {
		log.Printf("[Import] failed to read upload: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read uploaded file"})
	}

	// Archive the raw CSV before wiping anything — it is the only way back.
	if utils.R2Enabled() {
		if err := utils.ArchiveToR2(content, "imports/"+batchID+".csv", "text/csv"); err != nil {
			log.Printf("[Import] archive failed, refusing destructive import: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to archive CSV before import"})
		}
	}

	lines := utils.SplitCSVLines(string(content))
	if len(lines) < 2 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "CSV file is empty or invalid"})
	}

	headers := utils.ParseCSVLine(lines[0])
	now := time.Now().UTC()

	var records []models.Pokemon
	skipped := 0
	for _, line := range lines[1:] {
		values := utils.ParseCSVLine(line)
		if len(values) > len(headers) {
			// More fields than columns means the quote-tolerant parser lost
			// track of this row; dropping it beats mis-aligning every field.
			skipped++
			continue
		}
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(values) {
				row[header] = values[i]
			} else {
				row[header] = ""
			}
		}
		records = append(records, recordFromRow(row, now))
	}

	if len(records) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "CSV contains no importable rows"})
	}

	if err := s.DB.Exec(`DELETE FROM pokemon`).Error; err != nil {
		log.Printf("[Import] failed to clear table: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "import failed"})
	}

	const batchSize = 100
	imported := 0
	for start := 0; start < len(records); start += batchSize {
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[start:end]
		if err := s.DB.Create(&batch).Error; err != nil {
			log.Printf("[Import] batch insert failed after %d rows: %v", imported, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "import failed"})
		}
		imported += len(batch)
	}

	// Everything cached before the replace describes a dataset that no
	// longer exists.
	s.Cache.Clear()

	log.Printf("✅ [Import] replaced dataset: %d rows imported, %d skipped (batch %s)", imported, skipped, batchID)
	return c.JSON(fiber.Map{
		"success": true,
		"count":   imported,
		"skipped": skipped,
		"message": fmt.Sprintf("Successfully imported %d Pokemon", imported),
	})
}

// recordFromRow maps one parsed CSV row to a record, accepting both the
// machine-friendly and the display-style header spellings.
func recordFromRow(row map[string]string, now time.Time) models.Pokemon {
	get := func(keys ...string) string {
		for _, key := range keys {
			if value, ok := row[key]; ok && value != "" {
				return value
			}
		}
		return ""
	}
	atoi := func(raw string) int {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return 0
		}
		return n
	}
	optional := func(raw string) *string {
		if raw == "" {
			return nil
		}
		return &raw
	}

	name := get("name", "Name")
	speciesSlug := get("pokemon", "Pokemon")
	if speciesSlug == "" && name != "" {
		speciesSlug = slug.Make(name)
	}

	return models.Pokemon{
		Pokemon:        speciesSlug,
		Type:           get("type", "Type"),
		Species:        get("species", "Species"),
		Height:         get("height", "Height"),
		Weight:         get("weight", "Weight"),
		Abilities:      get("abilities", "Abilities"),
		EvYield:        get("evYield", "EV Yield"),
		CatchRate:      get("catchRate", "Catch Rate"),
		BaseFriendship: get("baseFriendship", "Base Friendship"),
		BaseExp:        get("baseExp", "Base Exp"),
		GrowthRate:     get("growthRate", "Growth Rate"),
		EggGroups:      get("eggGroups", "Egg Groups"),
		Gender:         get("gender", "Gender"),
		EggCycles:      get("eggCycles", "Egg Cycles"),

		HpBase:             atoi(get("hpBase", "HP Base")),
		HpMin:              atoi(get("hpMin", "HP Min")),
		HpMax:              atoi(get("hpMax", "HP Max")),
		AttackBase:         atoi(get("attackBase", "Attack Base")),
		AttackMin:          atoi(get("attackMin", "Attack Min")),
		AttackMax:          atoi(get("attackMax", "Attack Max")),
		DefenseBase:        atoi(get("defenseBase", "Defense Base")),
		DefenseMin:         atoi(get("defenseMin", "Defense Min")),
		DefenseMax:         atoi(get("defenseMax", "Defense Max")),
		SpecialAttackBase:  atoi(get("specialAttackBase", "Special Attack Base")),
		SpecialAttackMin:   atoi(get("specialAttackMin", "Special Attack Min")),
		SpecialAttackMax:   atoi(get("specialAttackMax", "Special Attack Max")),
		SpecialDefenseBase: atoi(get("specialDefenseBase", "Special Defense Base")),
		SpecialDefenseMin:  atoi(get("specialDefenseMin", "Special Defense Min")),
		SpecialDefenseMax:  atoi(get("specialDefenseMax", "Special Defense Max")),
		SpeedBase:          atoi(get("speedBase", "Speed Base")),
		SpeedMin:           atoi(get("speedMin", "Speed Min")),
		SpeedMax:           atoi(get("speedMax", "Speed Max")),

		Unnamed32: optional(get("unnamed32", "Unnamed: 32")),
		Unnamed33: optional(get("unnamed33", "Unnamed: 33")),

		Image: get("image", "Image"),
		Index: atoi(get("index", "Index", "#")),
		Name:  name,
		Type1: canonicalType(get("type1", "Type1", "Type 1")),
		Type2: optionalType(get("type2", "Type2", "Type 2")),

		Total:   atoi(get("total", "Total")),
		Hp:      atoi(get("hp", "HP")),
		Attack:  atoi(get("attack", "Attack")),
		Defense: atoi(get("defense", "Defense")),
		SpAtk:   atoi(get("spAtk", "Sp. Atk", "SpAtk")),
		SpDef:   atoi(get("spDef", "Sp. Def", "SpDef")),
		Speed:   atoi(get("speed", "Speed")),

		CreatedAt: now,
		UpdatedAt: now,
	}
}

// canonicalType normalizes casing so "FIRE" and "fire" both store as "Fire".
// Filters compare stored values exactly, so the table must hold one spelling.
func canonicalType(raw string) string {
	if raw == "" {
		return ""
	}
	return titleCaser.String(strings.ToLower(strings.TrimSpace(raw)))
}

func optionalType(raw string) *string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	canonical := canonicalType(raw)
	return &canonical
}

func parseListCriteria(c *fiber.Ctx) (models.ListCriteria, error) {
	criteria := models.ListCriteria{
		Search:   c.Query("search"),
		Type1:    c.Query("type1"),
		Type2:    c.Query("type2"),
		EggGroup: c.Query("eggGroup"),
		Page:     1,
		Limit:    24,
	}

	intParams := []struct {
		name   string
		target **int
	}{
		{"minHp", &criteria.MinHp}, {"maxHp", &criteria.MaxHp},
		{"minAttack", &criteria.MinAttack}, {"maxAttack", &criteria.MaxAttack},
		{"minDefense", &criteria.MinDefense}, {"maxDefense", &criteria.MaxDefense},
		{"minSpeed", &criteria.MinSpeed}, {"maxSpeed", &criteria.MaxSpeed},
	}
	for _, param := range intParams {
		raw := c.Query(param.name)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return criteria, fmt.Errorf("parameter %q must be an integer", param.name)
		}
		*param.target = &value
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return criteria, fmt.Errorf(`parameter "page" must be an integer`)
		}
		criteria.Page = page
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return criteria, fmt.Errorf(`parameter "limit" must be an integer`)
		}
		criteria.Limit = limit
	}

	return criteria, nil
}

func validationDetails(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}
	var details []string
	for _, fieldError := range validationErrors {
		details = append(details, fmt.Sprintf("%s failed %s validation", fieldError.Field(), fieldError.Tag()))
	}
	return strings.Join(details, "; ")
}

func sendJSON(c *fiber.Ctx, raw []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}
