package rdx

import (
	"log"
	"os"
	"time"

	"tripmate/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
}

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxSet(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

func RdxHset(hash, field, value string) error {
	return Conn.HSet(globals.Ctx, hash, field, value).Err()
}

func RdxHdel(hash, field string) error {
	return Conn.HDel(globals.Ctx, hash, field).Err()
}

// CacheGet returns the cached payload for key, or "" on a miss. Redis being
// down is treated as a miss so callers always fall through to the provider.
func CacheGet(key string) string {
	val, err := RdxGet(key)
	if err != nil {
		if err != redis.Nil {
			log.Println("Redis cache read error:", err)
		}
		return ""
	}
	return val
}

// CachePut stores payload under key with the given TTL, logging failures
// instead of surfacing them.
func CachePut(key, payload string, ttl time.Duration) {
	if err := RdxSet(key, payload, ttl); err != nil {
		log.Println("Redis cache write error:", err)
	}
}
