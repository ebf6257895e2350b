package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	authentity "finstock_backend/internal/feature/auth/domain/entity"
	commententity "finstock_backend/internal/feature/comments/domain/entity"
	portfolioentity "finstock_backend/internal/feature/portfolio/domain/entity"
	stockentity "finstock_backend/internal/feature/stocks/domain/entity"
)

// buildDSN は環境変数からMySQL接続文字列を組み立てます。
// clientFoundRows=trueは必須です。これが無いとUPDATEの影響行数が
// 「値が変わった行」になり、同じ値のままの更新が0行＝NotFound扱いになります。
// 影響行数は「WHEREに一致した行」で数える必要があります。
func buildDSN() string {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local&clientFoundRows=true",
		user, pass, host, port, name)
}

func OpenDB() *gorm.DB {
	dsn := buildDSN()

	var (
		db  *gorm.DB
		err error
	)

	// コンテナ起動直後はDBが立ち上がりきっていないことがあるためリトライする
	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User, Stock, Comment, PortfolioItem）
		if err := db.AutoMigrate(
			&authentity.User{},
			&stockentity.Stock{},
			&commententity.Comment{},
			&portfolioentity.PortfolioItem{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
