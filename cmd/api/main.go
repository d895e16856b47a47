package main

import (
	"log"
	"net/http"

	"github.com/bellebook/salon-scheduler/internal/cache"
	"github.com/bellebook/salon-scheduler/internal/config"
	dbpkg "github.com/bellebook/salon-scheduler/internal/db"
	"github.com/bellebook/salon-scheduler/internal/logging"
	"github.com/bellebook/salon-scheduler/internal/middleware"
	"github.com/bellebook/salon-scheduler/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()

	logging.Init(cfg.IsProduction())
	defer logging.L().Sync()

	db := dbpkg.NewDB(cfg)
	rdb := cache.NewClient(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
