package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Paazilparvesh/sakthi-ERP-sub000/cmd"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/database"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/database/migration"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/logger"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/middleware"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/repository"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/routes"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/auditlog"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	cmd.Execute(ctx)
}

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	migrationDir := os.Getenv("MIGRATIONS_DIR")
	if migrationDir == "" {
		migrationDir = "./migrations"
	}
	if err := migration.Migrate(dbURL, "file://"+migrationDir, logger.NewLogger()); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	db, err := database.NewPostgresConnection(dbURL)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	defer db.Close()

	log.Println("Connected to the database successfully!")

	repo := repository.NewRepository(db)
	auditLog := auditlog.NewAuditLog(repo)

	router := gin.Default()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.TimeoutMiddleware(30 * time.Second))

	routes.RegisterPublicRoutes(router, repo)
	routes.RegisterProtectedRoutes(router, repo, auditLog)
	routes.RegisterUtilityRoutes(router)

	host := os.Getenv("APP_HOST")
	if host == "" {
		host = ":8080"
	}

	if err := router.Run(host); err != nil {
		panic(err)
	}
}
