package main

import (
	"log"
	"net/http"
	"os"

	_ "kaineetam/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"kaineetam/internal/auth"
	"kaineetam/internal/cache"
	"kaineetam/internal/config"
	"kaineetam/internal/db"
	"kaineetam/internal/handler"
	"kaineetam/internal/model"
	"kaineetam/internal/repository"
	"kaineetam/internal/router"
	"kaineetam/internal/service"
)

// @title Kaineetam API
// @version 1.0
// @description Vishu blessing and kaineetam collection API: create blessings, generate UPI payment links and QR codes, record self-reported payments and view the dashboard.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.KaineetamLog{},
			&model.Blessing{},
			&model.Sender{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Sender{},
		&model.Blessing{},
		&model.KaineetamLog{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	blessingRepo := repository.NewBlessingRepository(gormDB)
	kaineetamRepo := repository.NewKaineetamRepository(gormDB)
	senderRepo := repository.NewSenderRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(senderRepo, jwtService, tokenStore)
	blessingService := service.NewBlessingService(blessingRepo, cacheClient, service.NewUPIBuilder(), service.NewQRRenderer(cacheClient))
	kaineetamService := service.NewKaineetamService(blessingRepo, kaineetamRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	blessingHandler := handler.NewBlessingHandler(blessingService)
	kaineetamHandler := handler.NewKaineetamHandler(kaineetamService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		blessingHandler,
		kaineetamHandler,
	)

	// Log swagger full path
	var swaggerURL string
	if cfg.SwaggerHost != "" {
		// SwaggerHost may already include scheme (http:// or https://)
		if len(cfg.SwaggerHost) >= 7 && cfg.SwaggerHost[:7] == "http://" {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else if len(cfg.SwaggerHost) >= 8 && cfg.SwaggerHost[:8] == "https://" {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else {
			swaggerURL = "http://" + cfg.SwaggerHost + "/swagger/index.html"
		}
	} else {
		swaggerURL = "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
