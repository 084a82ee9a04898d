package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis creates a single Redis client and verifies connectivity with Ping.
// An empty redis_addr disables redis: caching and redis logging become no-ops.
func InitRedis(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Printf("[redis] disabled (redis_addr empty)")
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPass,
		DB:           cfg.RedisDB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	// verify connectivity (hard fail if Redis is configured but down)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("[redis] ping failed: %v (addr=%s db=%d)", err, cfg.RedisAddr, cfg.RedisDB)
	}
	log.Printf("[redis] connected: addr=%s db=%d", cfg.RedisAddr, cfg.RedisDB)
	return rdb
}
