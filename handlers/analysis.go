// handlers/analysis.go
package handlers

import (
	"github.com/CRYPTON016/pokedex/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAnalysisRoutes(app *fiber.App, analysisService *services.AnalysisService) {
	analysis := app.Group("/analysis")

	analysis.Get("/effectiveness/:id", analysisService.GetEffectiveness)
	analysis.Get("/breeding", analysisService.GetBreeding)
	analysis.Post("/team", analysisService.AnalyzeTeamHandler)
	analysis.Post("/predict-type", analysisService.PredictTypeHandler)
}
