package result

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	orderv1 "github.com/cadenlund/BacktestingFramework/internal/domain/order/v1"
	portfoliov1 "github.com/cadenlund/BacktestingFramework/internal/domain/portfolio/v1"
	"github.com/cadenlund/BacktestingFramework/pkg/errors"
	"github.com/cadenlund/BacktestingFramework/pkg/logger"
	"github.com/cadenlund/BacktestingFramework/pkg/redis"
)

const keyPrefix = "backtest:run:"

// RunResult is the persisted record of one completed run: the two ordered
// histories the core guarantees, plus enough metadata to identify the run.
// Presentation collaborators (equity charts, tabular reports) read this.
type RunResult struct {
	RunID         string                    `json:"runID"`
	RunName       string                    `json:"runName"`
	Strategy      string                    `json:"strategy"`
	StartingCash  float64                   `json:"startingCash"`
	FinalCash     float64                   `json:"finalCash"`
	FinalEquity   float64                   `json:"finalEquity"`
	Events        int64                     `json:"events"`
	EquityHistory []portfoliov1.EquityPoint `json:"equityHistory"`
	TradeHistory  []*orderv1.FillReceipt    `json:"tradeHistory"`
	CreatedAt     int64                     `json:"createdAt"` // unix milliseconds
}

// Store persists run results in Redis keyed by run id.
type Store struct {
	logger      *logger.Logger
	redisclient redis.Client
}

// NewStore creates a result store backed by the given Redis client.
func NewStore(redisclient redis.Client, logger *logger.Logger) *Store {
	return &Store{
		logger:      logger,
		redisclient: redisclient,
	}
}

// Store writes the result under its run id.
func (s *Store) Store(ctx context.Context, result *RunResult) error {
	if result.CreatedAt == 0 {
		result.CreatedAt = time.Now().UnixMilli()
	}

	buf, err := json.Marshal(result)
	if err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "runID",
			Value: result.RunID,
		})
		return errors.NewTracer(string(errors.ResultMarshalError)).Wrap(err)
	}

	if err := s.redisclient.Set(ctx, keyPrefix+result.RunID, buf, 0); err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "runID",
			Value: result.RunID,
		})
		return errors.NewTracer(string(errors.ResultStoreError)).Wrap(err)
	}

	s.logger.InfoContext(ctx, fmt.Sprintf("Run result stored for run %s", result.RunID), logger.Field{
		Key:   "runID",
		Value: result.RunID,
	}, logger.Field{
		Key:   "trades",
		Value: len(result.TradeHistory),
	})
	return nil
}

// Load reads a result by run id. A missing run returns nil without error.
func (s *Store) Load(ctx context.Context, runID string) (*RunResult, error) {
	data, err := s.redisclient.Get(ctx, keyPrefix+runID)
	if err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "runID",
			Value: runID,
		})
		return nil, errors.NewTracer(string(errors.ResultLoadError)).Wrap(err)
	}

	if data == "" {
		s.logger.WarnContext(ctx, fmt.Sprintf("No result found for run %s", runID), logger.Field{
			Key:   "runID",
			Value: runID,
		})
		return nil, nil
	}

	var result RunResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "runID",
			Value: runID,
		})
		return nil, errors.NewTracer(string(errors.ResultUnmarshalError)).Wrap(err)
	}

	return &result, nil
}
