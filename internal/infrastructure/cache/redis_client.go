package cache

import (
	"context"
	"crypto/tls"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 2 * time.Second

// NewRedisClient builds a Redis client from the environment:
//   - REDIS_ADDR (host:port), or REDIS_HOST and REDIS_PORT together
//   - REDIS_PASSWORD, REDIS_DB (default 0)
//   - REDIS_TLS=true enables TLS
//
// It returns nil when REDIS_ADDR and REDIS_HOST are both unset or the server
// does not answer a ping; callers then run without a cache.
func NewRedisClient() *redis.Client {
	opts, ok := redisOptionsFromEnv()
	if !ok {
		log.Printf("[redis] not configured, rate cache disabled")
		return nil
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[redis] ping failed addr=%s err=%v, rate cache disabled", opts.Addr, err)
		_ = client.Close()
		return nil
	}
	log.Printf("[redis] connected addr=%s db=%d", opts.Addr, opts.DB)
	return client
}

func redisOptionsFromEnv() (*redis.Options, bool) {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	host, port := os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT")
	if host != "" {
		if port == "" {
			port = "6379"
		}
		addr = host + ":" + port
	}
	if addr == "" {
		return nil, false
	}

	db := 0
	if n, err := strconv.Atoi(os.Getenv("REDIS_DB")); err == nil {
		db = n
	}
	opts := &redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	}
	if useTLS, _ := strconv.ParseBool(os.Getenv("REDIS_TLS")); useTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return opts, true
}
