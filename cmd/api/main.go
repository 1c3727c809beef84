package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tshirt-design-api/internal/asset"
	"tshirt-design-api/internal/core/auth"
	"tshirt-design-api/internal/core/cache"
	"tshirt-design-api/internal/core/config"
	"tshirt-design-api/internal/core/database"
	"tshirt-design-api/internal/core/logger"
	"tshirt-design-api/internal/core/server"
	"tshirt-design-api/internal/domain"
	"tshirt-design-api/internal/repo"
	"tshirt-design-api/internal/service"
	"tshirt-design-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}, &domain.Design{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	store, err := asset.NewStore(cfg.Asset.Root, cfg.Asset.BaseURL, log)
	if err != nil {
		log.Fatal("asset store", zap.Error(err))
	}

	var rc *cache.Cache
	if cfg.Redis.Addr != "" {
		rc = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	designSvc := service.NewDesignService(repo.NewDesignRepo(db), store, rc, log)
	userSvc := service.NewUserService(repo.NewUserRepo(db))

	r := router.NewAPIEngine(log, cfg, designSvc, userSvc, jwter)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("user api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("uploads", baseURL+cfg.Asset.BaseURL),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("user api start FAILED", zap.Error(err))
		}
	}()
	log.Info("user api started SUCCESS")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("user api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
