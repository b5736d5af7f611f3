package routes

import (
	"daidokoro-note/internal/api/handlers"
	"daidokoro-note/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	RecipeHandler  handlers.RecipeHandler
	FridgeHandler  handlers.FridgeHandler
	HistoryHandler handlers.HistoryHandler
	OCRHandler     handlers.OCRHandler
	HealthHandler  handlers.HealthHandler
	Middleware     middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.RequestIDMiddleware())
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Recipes()
	c.Fridge()
	c.History()
	c.Images()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", c.HealthHandler.Ping)
	c.App.Get("/api/v1/health", c.HealthHandler.Health)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	recipes.Get("/categories", c.RecipeHandler.GetCategories)
	recipes.Get("/search", c.RecipeHandler.SearchByIngredients)

	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Patch("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/cooked", c.RecipeHandler.MarkAsCooked)

	c.App.Get("/api/v1/recommendations", c.RecipeHandler.GetRecipeRecommendations)
}

func (c *Config) Fridge() {
	fridge := c.App.Group("/api/v1/fridge")
	fridge.Get("/suggestions", c.FridgeHandler.GetSuggestions)

	fridge.Post("", c.FridgeHandler.AddIngredient)
	fridge.Get("", c.FridgeHandler.GetIngredients)
	fridge.Delete("/:id", c.FridgeHandler.DeleteIngredient)
}

func (c *Config) History() {
	history := c.App.Group("/api/v1/history")
	history.Post("", c.HistoryHandler.AddHistory)
	history.Get("", c.HistoryHandler.GetHistory)
	history.Get("/:id", c.HistoryHandler.GetHistoryDetail)
	history.Delete("/:id", c.HistoryHandler.DeleteHistory)
	history.Post("/:id/convert", c.HistoryHandler.ConvertToRecipe)
}

func (c *Config) Images() {
	c.App.Post("/api/v1/images", c.OCRHandler.EncodeImage)
	c.App.Post("/api/v1/ocr/ingest", c.OCRHandler.IngestRecipe)
}
