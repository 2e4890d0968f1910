package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MustLoad loads the configuration from environment variables and .env file.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load() // Load environment variables from .env file

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and .env file.
func Load[T any](cfg T) error {
	_ = godotenv.Load() // a missing .env file is fine, env vars may be set directly

	if err := env.Parse(cfg); err != nil {
		return err
	}

	return nil
}

// Config holds the configuration for a backtest run.
type Config struct {
	RunName          string         `env:"RUN_NAME" envDefault:"backtest"`
	StartingCash     float64        `env:"STARTING_CASH" envDefault:"100000"`
	ThrottleInterval int            `env:"THROTTLE_INTERVAL" envDefault:"1"`
	Strategy         StrategyConfig `envPrefix:"STRATEGY_"`
	Feed             FeedConfig     `envPrefix:"FEED_"`
	Result           ResultConfig   `envPrefix:"RESULT_"`
}

// StrategyConfig selects and parameterizes the strategy driving the run.
type StrategyConfig struct {
	Name         string  `env:"NAME" envDefault:"buy_and_hold"`
	Symbol       string  `env:"SYMBOL" envDefault:"AAPL"`
	Quantity     float64 `env:"QUANTITY" envDefault:"10"`
	CashFraction float64 `env:"CASH_FRACTION" envDefault:"1.0"`
	ShortWindow  int     `env:"SHORT_WINDOW" envDefault:"50"`
	LongWindow   int     `env:"LONG_WINDOW" envDefault:"200"`
}

// FeedConfig selects the event source for the run.
type FeedConfig struct {
	Source      string `env:"SOURCE" envDefault:"csv"` // csv or kafka
	CSVPath     string `env:"CSV_PATH" envDefault:"testdata/prices.csv"`
	Symbol      string `env:"SYMBOL" envDefault:"AAPL"`
	KafkaConfig `envPrefix:"KAFKA_"`
}

// KafkaConfig holds the configuration for the Kafka tick consumer.
type KafkaConfig struct {
	Topic   string   `env:"TOPIC" envDefault:"ticks"`
	GroupID string   `env:"GROUP_ID" envDefault:"default_group"`
	Brokers []string `env:"BROKER" envDefault:"localhost:9092"`
}

// ResultConfig holds the configuration for persisting run results.
type ResultConfig struct {
	Enabled     bool   `env:"ENABLED" envDefault:"false"`
	RedisConfig `envPrefix:"REDIS_"`
}

// RedisConfig holds the configuration for the Redis result store.
type RedisConfig struct {
	Addrs    string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	Username string `env:"USERNAME" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
}
