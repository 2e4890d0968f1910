package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	app "github.com/cadenlund/BacktestingFramework/internal/app/engine"
	feedv1 "github.com/cadenlund/BacktestingFramework/internal/domain/feed/v1"
	strategyv1 "github.com/cadenlund/BacktestingFramework/internal/domain/strategy/v1"
	"github.com/cadenlund/BacktestingFramework/internal/usecase/feed"
	"github.com/cadenlund/BacktestingFramework/internal/usecase/market"
	"github.com/cadenlund/BacktestingFramework/internal/usecase/portfolio"
	"github.com/cadenlund/BacktestingFramework/internal/usecase/result"
	"github.com/cadenlund/BacktestingFramework/internal/usecase/strategy"
	"github.com/cadenlund/BacktestingFramework/pkg/config"
	"github.com/cadenlund/BacktestingFramework/pkg/logger"
	"github.com/cadenlund/BacktestingFramework/pkg/redis"
	"github.com/cadenlund/BacktestingFramework/pkg/util"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	cfg = &config.Config{}
	config.MustLoad(cfg)

	logger, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}

	log = logger
}

func main() {
	defer log.Sync()

	// Cancel the run on SIGINT/SIGTERM so a Kafka-fed run can be ended
	// from the outside; in-memory and CSV runs end on feed exhaustion.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runID := util.NewRunID()
	ctx = util.WithRunID(ctx, runID)

	eventFeed, err := buildFeed()
	if err != nil {
		log.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "build_feed",
		})
		return
	}
	defer eventFeed.Close()

	ledger := portfolio.NewPortfolio(cfg.StartingCash, log)
	simMarket := market.NewMarket(ledger, log)
	strat := buildStrategy()

	engine := app.NewEngineWithOptions(simMarket, ledger, strat, eventFeed, log, &app.Options{
		ThrottleInterval: cfg.ThrottleInterval,
	})

	log.InfoContext(ctx, "Backtest started",
		logger.Field{Key: "run", Value: cfg.RunName},
		logger.Field{Key: "strategy", Value: cfg.Strategy.Name},
		logger.Field{Key: "startingCash", Value: cfg.StartingCash},
	)

	if err := engine.Run(ctx); err != nil {
		log.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "run_engine",
		})
		return
	}

	finalEquity := ledger.Cash()
	if points := ledger.EquityHistory(); len(points) > 0 {
		finalEquity = points[len(points)-1].TotalValue
	}

	log.InfoContext(ctx, "Backtest complete",
		logger.Field{Key: "events", Value: engine.EventCount()},
		logger.Field{Key: "finalCash", Value: ledger.Cash()},
		logger.Field{Key: "finalEquity", Value: finalEquity},
		logger.Field{Key: "trades", Value: len(ledger.TradeHistory())},
	)

	if cfg.Result.Enabled {
		storeResult(ctx, runID, ledger, engine.EventCount(), finalEquity)
	}
}

func buildFeed() (feedv1.Feed, error) {
	switch cfg.Feed.Source {
	case "kafka":
		return feed.NewKafkaFeed(cfg.Feed.KafkaConfig, log), nil
	default:
		return feed.NewCSVFeed(cfg.Feed.CSVPath, cfg.Feed.Symbol)
	}
}

func buildStrategy() strategyv1.Strategy {
	switch cfg.Strategy.Name {
	case "simple_buy":
		return strategy.NewSimpleBuy(cfg.Strategy.Symbol, cfg.Strategy.Quantity, log)
	case "ma_crossover":
		return strategy.NewMovingAverageCrossover(
			cfg.Strategy.Symbol,
			cfg.Strategy.ShortWindow,
			cfg.Strategy.LongWindow,
			cfg.Strategy.CashFraction,
			log,
		)
	default:
		return strategy.NewBuyAndHold(cfg.Strategy.Symbol, cfg.Strategy.CashFraction, log)
	}
}

func storeResult(ctx context.Context, runID string, ledger *portfolio.Portfolio, events int64, finalEquity float64) {
	redisConfig := redis.DefaultConfig()
	redisConfig.Addrs = []string{cfg.Result.Addrs}
	redisConfig.Password = cfg.Result.Password
	redisConfig.Username = cfg.Result.Username
	redisConfig.DB = cfg.Result.DB

	rclient := redis.NewClient(log, redisConfig)
	if err := rclient.Connect(ctx); err != nil {
		log.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "connect_redis",
		})
		return
	}
	defer rclient.Disconnect(ctx)

	store := result.NewStore(rclient, log)
	err := store.Store(ctx, &result.RunResult{
		RunID:         runID,
		RunName:       cfg.RunName,
		Strategy:      cfg.Strategy.Name,
		StartingCash:  cfg.StartingCash,
		FinalCash:     ledger.Cash(),
		FinalEquity:   finalEquity,
		Events:        events,
		EquityHistory: ledger.EquityHistory(),
		TradeHistory:  ledger.TradeHistory(),
		CreatedAt:     time.Now().UnixMilli(),
	})
	if err != nil {
		log.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "store_result",
		})
	}
}
