package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/rsmedika/hospital-api/internal/config"
	dbpkg "github.com/rsmedika/hospital-api/internal/db"
	"github.com/rsmedika/hospital-api/internal/middleware"
	"github.com/rsmedika/hospital-api/internal/routes"
	"github.com/rsmedika/hospital-api/internal/token"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL, token.NewRedisStore(rdb))

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, tokens)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
