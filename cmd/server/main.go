package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"finstock_backend/internal/app/di"
	"finstock_backend/internal/app/router"
	authadapters "finstock_backend/internal/feature/auth/adapters"
	authhandler "finstock_backend/internal/feature/auth/transport/handler"
	authusecase "finstock_backend/internal/feature/auth/usecase"
	commentadapters "finstock_backend/internal/feature/comments/adapters"
	commenthandler "finstock_backend/internal/feature/comments/transport/handler"
	commentusecase "finstock_backend/internal/feature/comments/usecase"
	portfolioadapters "finstock_backend/internal/feature/portfolio/adapters"
	portfoliohandler "finstock_backend/internal/feature/portfolio/transport/handler"
	portfoliousecase "finstock_backend/internal/feature/portfolio/usecase"
	stockhandler "finstock_backend/internal/feature/stocks/transport/handler"
	stockusecase "finstock_backend/internal/feature/stocks/usecase"
	infradb "finstock_backend/internal/platform/db"
	jwtmw "finstock_backend/internal/platform/jwt"
	infraredis "finstock_backend/internal/platform/redis"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	stockRepo := di.NewStockRepository(rdb, db, 5*time.Minute)
	commentRepo := commentadapters.NewCommentRepository(db)
	portfolioRepo := portfolioadapters.NewPortfolioRepository(db)

	// Usecase
	tokenGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	stockUC := stockusecase.NewStockUsecase(stockRepo)
	commentUC := commentusecase.NewCommentUsecase(commentRepo, stockUC)
	portfolioUC := portfoliousecase.NewPortfolioUsecase(portfolioRepo, stockUC)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	stockH := stockhandler.NewStockHandler(stockUC)
	commentH := commenthandler.NewCommentHandler(commentUC)
	portfolioH := portfoliohandler.NewPortfolioHandler(portfolioUC)

	// ルータ生成
	router := router.NewRouter(authH, stockH, commentH, portfolioH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
