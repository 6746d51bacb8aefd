package app

import (
	"go-hrapp/internal/config"
	"go-hrapp/internal/middleware"
	"go-hrapp/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects infrastructure and registers every module on router. The
// returned func releases the connections.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(dbConfig(cfg), cfg.DBRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	if !cfg.IsProduction() {
		if err := migrate(gormDB); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	router.Use(middleware.RequestID(), middleware.ContextLogger(zap.L()))

	if err := registerModules(router, cfg, sqlDB, gormDB, redisClient); err != nil {
		_ = redisClient.Close()
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("modules registered")

	return func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("close redis failed", zap.Error(err))
		}
		if err := sqlDB.Close(); err != nil {
			logger.Warn("close database failed", zap.Error(err))
		}
	}, nil
}

func dbConfig(cfg config.Config) connection.DBConfig {
	return connection.DBConfig{
		Host:     cfg.DBHost,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Name:     cfg.DBName,
		Port:     cfg.DBPort,
		SSLMode:  cfg.DBSSLMode,
	}
}
