package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Rohith16-code/velan-properties/config"
	"github.com/Rohith16-code/velan-properties/routes"
	"github.com/Rohith16-code/velan-properties/store"
	"github.com/Rohith16-code/velan-properties/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	if err := config.ConnectDB(cfg); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := config.DisconnectDB(); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	contacts := store.NewMongo(config.GetCollection(cfg.ContactsCollection))
	properties := store.NewMongo(config.GetCollection(cfg.PropertiesCollection))

	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := config.SeedProperties(seedCtx, properties); err != nil {
		log.Printf("Failed to seed properties: %v", err)
	}
	cancel()

	e := echo.New()
	e.Validator = utils.NewValidator()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	routes.RegisterRoutes(e, contacts, properties)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		e.Logger.Error(err)
	}
}
