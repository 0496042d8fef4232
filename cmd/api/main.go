package main

import (
	"log"

	"github.com/gin-gonic/gin"

	_ "github.com/danuartha/notaris-go/docs"
	"github.com/danuartha/notaris-go/internal/api/middleware"
	"github.com/danuartha/notaris-go/internal/api/routes"
	"github.com/danuartha/notaris-go/internal/config"
	"github.com/danuartha/notaris-go/internal/config/db"
	"github.com/danuartha/notaris-go/internal/domain/activity"
	"github.com/danuartha/notaris-go/internal/domain/audit"
	"github.com/danuartha/notaris-go/internal/domain/deed"
	"github.com/danuartha/notaris-go/internal/domain/draft"
	"github.com/danuartha/notaris-go/internal/domain/requirement"
	"github.com/danuartha/notaris-go/internal/domain/schedule"
	"github.com/danuartha/notaris-go/internal/domain/track"
	"github.com/danuartha/notaris-go/internal/domain/user"
	"github.com/danuartha/notaris-go/pkg/storage"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Initialize object storage for uploaded documents
	storage.InitMinio()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&deed.Deed{},
		&requirement.Requirement{},
		&requirement.Value{},
		&activity.Activity{},
		&activity.Client{},
		&schedule.Schedule{},
		&draft.Draft{},
		&draft.Approval{},
		&track.Track{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
