package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"petcare_backend/internal/app/di"
	"petcare_backend/internal/app/router"
	authadapters "petcare_backend/internal/feature/auth/adapters"
	authhandler "petcare_backend/internal/feature/auth/transport/handler"
	authusecase "petcare_backend/internal/feature/auth/usecase"
	petadapters "petcare_backend/internal/feature/pets/adapters"
	pethandler "petcare_backend/internal/feature/pets/transport/handler"
	petusecase "petcare_backend/internal/feature/pets/usecase"
	"petcare_backend/internal/platform/cache"
	infradb "petcare_backend/internal/platform/db"
	jwtmw "petcare_backend/internal/platform/jwt"
	infraredis "petcare_backend/internal/platform/redis"
	"petcare_backend/internal/shared/ratelimiter"
)

const (
	sessionTTL         = 7 * 24 * time.Hour
	maxSessionsPerUser = 5
	petListCacheTTL    = 5 * time.Minute
	loginAttemptLimit  = 30
	loginAttemptWindow = time.Minute
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis (optional: sessions fall back to the DB, list caching is skipped)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Using DB sessions and no list cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT secret check
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokens := jwtmw.NewCodec(secret, sessionTTL)

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	petRepo := petadapters.NewPetGorm(db)

	// Per-user pet list cache; mutations invalidate so the next list refetches
	cachedPetRepo := cache.NewCachingPetRepository(rdb, petListCacheTTL, petRepo, "pets")

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, tokens, sessionTTL, maxSessionsPerUser)
	petUC := petusecase.NewPetUsecase(cachedPetRepo, authUC)

	// Handler
	limiter := ratelimiter.New(loginAttemptLimit, loginAttemptWindow)
	authH := authhandler.NewAuthHandler(authUC, limiter)
	petH := pethandler.NewPetHandler(petUC)

	r := router.NewRouter(authH, petH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
