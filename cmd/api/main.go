package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/servibook/booking-api/internal/cache"
	"github.com/servibook/booking-api/internal/config"
	dbpkg "github.com/servibook/booking-api/internal/db"
	"github.com/servibook/booking-api/internal/middleware"
	"github.com/servibook/booking-api/internal/notify"
	"github.com/servibook/booking-api/internal/routes"
	"github.com/servibook/booking-api/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var catalogCache cache.Cache = cache.Noop{}
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Printf("redis unavailable, catalog cache disabled: %v", err)
		} else {
			catalogCache = rc
		}
	}

	var images storage.ImageStore
	if cfg.AWSS3Bucket != "" {
		s3Store, err := storage.NewS3Store(cfg)
		if err != nil {
			log.Fatalf("failed to init image storage: %v", err)
		}
		images = s3Store
	}

	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.Register(r, routes.Deps{
		DB:       db,
		Cfg:      cfg,
		Notifier: notify.NewMailer(cfg),
		Cache:    catalogCache,
		Images:   images,
	})

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
