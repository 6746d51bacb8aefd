package app

import (
	"database/sql"

	"go-hrapp/internal/absence"
	"go-hrapp/internal/auth"
	"go-hrapp/internal/config"
	"go-hrapp/internal/messaging/kafka"
	"go-hrapp/internal/policy"
	"go-hrapp/internal/profile"
	"go-hrapp/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	absenceRepo := absence.NewRepository(gormDB)
	profileRepo := profile.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	counterRepo := counter.NewRepository(gormDB)

	// --- Core ---
	engine, err := policy.NewEngine()
	if err != nil {
		return err
	}
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	resolver := auth.NewResolver(tokens, authRepo)

	// --- Services ---
	authService := auth.NewService(authRepo, tokens)
	profileService := profile.NewServiceWithCache(profileRepo, counterRepo, engine, rdb, cfg.ProfileCacheTTL)
	absenceService := absence.NewServiceWithOutbox(db, absenceRepo, engine, profile.NewDirectory(profileRepo), outboxRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction(), int(cfg.JWTTTL.Seconds()))
	absenceHandler := absence.NewHandler(absenceService)
	profileHandler := profile.NewHandler(profileService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, resolver)
		absence.RegisterRoutes(api, absenceHandler, resolver, rdb)
		profile.RegisterRoutes(api, profileHandler, resolver)
	}

	return nil
}
