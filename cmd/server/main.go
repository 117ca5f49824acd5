package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"todolist-service/internal/application/services"
	"todolist-service/internal/config"
	"todolist-service/internal/delivery/handler"
	"todolist-service/internal/delivery/view"
	"todolist-service/internal/infrastructure/db"
	"todolist-service/internal/infrastructure/session"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Invalid configuration: ", err)
	}

	gdb, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal("❌ Failed to connect to database: ", err)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		log.Fatal("❌ Failed to migrate database: ", err)
	}

	sessions := newSessionStore(cfg)

	tokens := session.NewTokenService(cfg.SessionSecret, cfg.SessionTTL)
	users := db.NewUserRepository(gdb)
	todos := db.NewTodoRepository(gdb)

	authService := services.NewAuthService(users, sessions, tokens)
	todoService := services.NewTodoService(todos)
	h := handler.NewHandler(authService, todoService, tokens)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = view.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(10),
				Burst:     30,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	h.RegisterRoutes(e, cfg.SessionSecret)

	log.Println("🚀 Server running on", cfg.HTTPAddr)
	e.Logger.Fatal(e.Start(cfg.HTTPAddr))
}

// newSessionStore prefers redis so sessions survive restarts; when redis is
// unreachable it degrades to the in-memory store instead of refusing to boot.
func newSessionStore(cfg *config.Config) session.Store {
	client := session.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("⚠️ Redis unreachable, falling back to in-memory sessions:", err)
		return session.NewMemoryStore()
	}

	log.Println("✅ Connected to Redis at", cfg.RedisAddr)
	return session.NewRedisStore(client)
}
