package redis

import "time"

// Config holds the connection settings for the Redis client.
type Config struct {
	Addrs    []string
	Username string
	Password string
	DB       int

	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	PoolSize       int
	MaxIdleConns   int
}

// DefaultConfig returns a Config with sane defaults for a local standalone Redis.
func DefaultConfig() *Config {
	return &Config{
		Addrs:          []string{"localhost:6379"},
		DB:             0,
		ConnectTimeout: 5 * time.Second,
		ReadTimeout:    3 * time.Second,
		WriteTimeout:   3 * time.Second,
		PoolSize:       10,
		MaxIdleConns:   2,
	}
}
