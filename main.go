// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/levankhai101280/burger-builder-2026/config"
	"github.com/levankhai101280/burger-builder-2026/controllers"
	"github.com/levankhai101280/burger-builder-2026/models"
	"github.com/levankhai101280/burger-builder-2026/routes"
	"github.com/levankhai101280/burger-builder-2026/store"
	"github.com/levankhai101280/burger-builder-2026/utils"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(cfg.JWTSecret)

	// Initialize EmailService
	emailService := utils.NewEmailService(cfg.PostmarkToken, cfg.EmailSender)

	// Connect to MongoDB
	client := utils.ConnectDB(cfg.MongoURI)
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	orderStore := store.NewMongoOrderStore(client, cfg.DatabaseName)
	sessions := controllers.NewSessions(models.DefaultCatalog)

	// Initialize controllers
	userController := controllers.NewUserController(client, cfg.DatabaseName)
	builderController := controllers.NewBuilderController(sessions, models.DefaultCatalog)
	orderController := controllers.NewOrderController(sessions, orderStore, cfg.DialPrefix, emailService)

	// Set up the router
	router := mux.NewRouter()
	// Register routes
	routes.RegisterRoutes(router, userController, builderController, orderController)

	// Start the server
	fmt.Printf("Server is running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
