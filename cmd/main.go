package main

import (
	"context"
	"daidokoro-note/cmd/config"
	"daidokoro-note/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	store, driver, err := config.NewStore(context.Background())
	if err != nil {
		log.Fatalf("error opening %s store: %v", driver, err)
	}

	app, err := config.NewApp(store, driver)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	port := utils.GetConfigOrDefault("APP_PORT", "8080")
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
