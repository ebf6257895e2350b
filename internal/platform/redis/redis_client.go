// Package redis は銘柄カタログのキャッシュに使うRedis接続を提供します。
package redis

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// pingTimeout は起動時の接続確認に許す時間です。Redisはキャッシュ専用の
// 任意依存なので、応答しないサーバーで起動をブロックしないよう短めにします。
const pingTimeout = 3 * time.Second

// NewRedisClient はREDIS_HOST/PORT/PASSWORD/DBからクライアントを作成します。
// REDIS_DBが未設定または数値でない場合はDB 0を使います。
func NewRedisClient() (*redis.Client, error) {
	addr := os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT")

	dbIndex := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			slog.Warn("invalid REDIS_DB, using database 0", "value", v)
		} else {
			dbIndex = n
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       dbIndex,
	})

	// 接続確認
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr, "db", dbIndex)
	return rdb, nil
}
