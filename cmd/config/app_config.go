package config

import (
	"daidokoro-note/internal/api/handlers"
	"daidokoro-note/internal/api/routes"
	"daidokoro-note/internal/middleware"
	"daidokoro-note/internal/utils"
	"daidokoro-note/pkg/fridge"
	"daidokoro-note/pkg/history"
	"daidokoro-note/pkg/kv"
	"daidokoro-note/pkg/ocr"
	"daidokoro-note/pkg/recipe"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func NewApp(store kv.KVRepository, storeDriver string) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		BodyLimit:         utils.MaxImageBytes * 6,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	logDir := utils.GetConfigOrDefault("LOG_DIR", "./logs")
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(
		filepath.Join(logDir, "app.log"),
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, err
	}
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${locals:requestid} | ${status} | ${latency} | ${method} ${path} ${error}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Tokyo",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	ocrTimeout, err := strconv.Atoi(utils.GetConfigOrDefault("OCR_TIMEOUT_SECONDS", "30"))
	if err != nil {
		log.Warnf("invalid OCR_TIMEOUT_SECONDS, using default: %v", err)
		ocrTimeout = 0
	}
	ocrClient := ocr.NewOCRClient(
		utils.GetConfig("OCR_API_URL"),
		utils.GetConfig("OCR_API_TOKEN"),
		time.Duration(ocrTimeout)*time.Second,
	)

	// Repository
	recipeRepository := recipe.NewRecipeRepository(store)
	fridgeRepository := fridge.NewFridgeRepository(store)
	historyRepository := history.NewHistoryRepository(store)

	// Service
	recipeService := recipe.NewRecipeService(recipeRepository, fridgeRepository)
	fridgeService := fridge.NewFridgeService(fridgeRepository)
	historyService := history.NewHistoryService(historyRepository, recipeRepository)
	ocrService := ocr.NewOCRService(ocrClient)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, historyService, validator)
	fridgeHandler := handlers.NewFridgeHandler(fridgeService, validator)
	historyHandler := handlers.NewHistoryHandler(historyService, validator)
	ocrHandler := handlers.NewOCRHandler(ocrService, validator)
	healthHandler := handlers.NewHealthHandler(store, storeDriver, ocrService)

	// routes
	routesConfig := routes.Config{
		App:            app,
		RecipeHandler:  recipeHandler,
		FridgeHandler:  fridgeHandler,
		HistoryHandler: historyHandler,
		OCRHandler:     ocrHandler,
		HealthHandler:  healthHandler,
		Middleware:     middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
