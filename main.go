package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/CRYPTON016/pokedex/cache"
	"github.com/CRYPTON016/pokedex/handlers"
	"github.com/CRYPTON016/pokedex/models"
	"github.com/CRYPTON016/pokedex/services"
	"github.com/CRYPTON016/pokedex/utils"
	"github.com/CRYPTON016/pokedex/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024, // 50MB — dataset CSVs are small, but leave headroom
	})

	// CORS for the browser frontend
	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		ExposeHeaders:    "Content-Length, Content-Type, Cache-Control",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&models.Pokemon{}); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	if err := utils.EnsureUploadDir(); err != nil {
		log.Fatal("failed to ensure upload dir:", err)
	}

	if err := utils.InitR2(); err != nil {
		log.Fatal("failed to initialize R2 client:", err)
	}
	if !utils.R2Enabled() {
		log.Println("⚠️  R2 archive not configured — imported CSVs will only be kept locally")
	}

	// Response cache: Redis when configured, in-process otherwise
	var store cache.Store
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
		redisStore, err := cache.NewRedis(redisAddr, os.Getenv("REDIS_PASSWORD"), redisDB)
		if err != nil {
			log.Fatal("failed to connect to redis:", err)
		}
		store = redisStore
		log.Printf("✅ Using Redis response cache at %s", redisAddr)
	} else {
		store = cache.NewMemory()
		log.Println("✅ Using in-memory response cache")
	}

	pokemonService := services.NewPokemonService(db, store)
	statsService := services.NewStatsService(db, store)
	evolutionService := services.NewEvolutionService(db, store)
	analysisService := services.NewAnalysisService(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go workers.PollCache(ctx, store, 1*time.Minute)
	statsService.StartAggregateWarmer()

	handlers.SetupPokemonRoutes(app, pokemonService, statsService, evolutionService)
	handlers.SetupAnalysisRoutes(app, analysisService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5200"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Println("✅ Cache janitor running (every 1m)")
	log.Println("✅ Aggregate warmer scheduled (hourly)")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
