package helper

import (
	"os"

	"github.com/redis/go-redis/v9"
)

var Redis = redis.NewClient(&redis.Options{Addr: redisAddr()})

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}
