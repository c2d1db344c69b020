package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/weecompany/reservas-api/internal/config"
	dbpkg "github.com/weecompany/reservas-api/internal/db"
	"github.com/weecompany/reservas-api/internal/logger"
	"github.com/weecompany/reservas-api/internal/middleware"
	"github.com/weecompany/reservas-api/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	db := dbpkg.NewDB(cfg, log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server listening")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
