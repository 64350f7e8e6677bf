package main

import (
	"context"
	"log"
	"os"
	"time"

	"portal/database"
	"portal/handlers"
	"portal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	// Create context with timeout for initial connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, databaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	r := gin.Default()

	r.GET("/health", handlers.HealthCheck)

	api := r.Group("/api", middleware.AuthRequired(db))
	api.GET("/dashboard/stats", handlers.GetDashboardStats(db))
	api.GET("/projects", handlers.ListProjects(db))
	api.GET("/projects/new/form", handlers.NewProjectForm())
	api.GET("/projects/:id", handlers.GetProject(db))
	api.GET("/projects/:id/form", handlers.GetProjectForm(db))
	api.POST("/projects", handlers.CreateProject(db))
	api.PATCH("/projects/:id", handlers.UpdateProject(db))
	api.GET("/invoices", handlers.ListInvoices(db))
	api.GET("/payments", handlers.ListPayments(db))
	api.GET("/clients", handlers.ListClients(db))
	api.GET("/project-credentials/client", handlers.ListClientCredentials(db))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server starting on :" + port)
	r.Run(":" + port)
}
