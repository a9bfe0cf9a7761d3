// handlers/pokemon.go
package handlers

import (
	"github.com/CRYPTON016/pokedex/middleware"
	"github.com/CRYPTON016/pokedex/services"

	"github.com/gofiber/fiber/v2"
)

func SetupPokemonRoutes(
	app *fiber.App,
	pokemonService *services.PokemonService,
	statsService *services.StatsService,
	evolutionService *services.EvolutionService,
) {
	pokemon := app.Group("/pokemon")

	// Literal paths first — they must win over /:id. Cache-Control lifetimes
	// scale with volatility: short for filtered lists, long for the static
	// aggregate/evolution/move tables.
	pokemon.Get("/stats", middleware.CacheControl(3600, 86400), statsService.GetStats)
	pokemon.Get("/top", middleware.CacheControl(300, 3600), statsService.GetTopPokemon)
	pokemon.Get("/evolutions/:id", middleware.CacheControl(3600, 86400), evolutionService.GetEvolutions)
	pokemon.Get("/", middleware.CacheControl(10, 30), pokemonService.GetPokemonList)
	pokemon.Get("/:id", middleware.CacheControl(60, 3600), pokemonService.GetPokemonByID)
	pokemon.Get("/:id/stat-ranges", middleware.CacheControl(3600, 86400), pokemonService.GetStatRanges)

	// 💣 Destructive full-table replace — never cached
	pokemon.Post("/import-csv", pokemonService.ImportCSV)

	app.Get("/moves/:index", middleware.CacheControl(3600, 0), services.GetMovesForIndex)
}
