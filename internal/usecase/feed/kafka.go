package feed

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	feedv1 "github.com/cadenlund/BacktestingFramework/internal/domain/feed/v1"
	"github.com/cadenlund/BacktestingFramework/pkg/config"
	"github.com/cadenlund/BacktestingFramework/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// KafkaFeed consumes tick events from a Kafka topic. Each message value is
// a JSON object in the event shape: a reserved timestamp field plus symbol
// fields carrying prices. The feed reads forward from the first offset and
// never commits, so a recorded topic replays deterministically.
type KafkaFeed struct {
	kafkaReader *kafka.Reader
	logger      *logger.Logger
}

// NewKafkaFeed creates a Kafka consumer over the configured tick topic.
func NewKafkaFeed(cfg config.KafkaConfig, log *logger.Logger) *KafkaFeed {
	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       cfg.Topic,
		Partition:   0,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.FirstOffset,
	})

	return &KafkaFeed{
		kafkaReader: kafkaReader,
		logger:      log,
	}
}

// Next reads and decodes one tick event.
func (f *KafkaFeed) Next(ctx context.Context) (feedv1.Event, error) {
	msg, err := f.kafkaReader.ReadMessage(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// a cancelled run ends the feed, it is not a read fault
			return nil, io.EOF
		}
		f.logger.Error(err,
			logger.Field{Key: "operation", Value: "ReadMessage"},
		)
		return nil, err
	}

	var event feedv1.Event
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		f.logger.Error(err,
			logger.Field{Key: "operation", Value: "UnmarshalEvent"},
			logger.Field{Key: "offset", Value: msg.Offset},
		)
		return nil, err
	}

	f.logger.Debug("Tick received",
		logger.Field{Key: "offset", Value: msg.Offset},
		logger.Field{Key: "prices", Value: event.Prices()},
	)

	return event, nil
}

// Close properly closes the Kafka reader.
func (f *KafkaFeed) Close() error {
	if err := f.kafkaReader.Close(); err != nil {
		f.logger.Error(err,
			logger.Field{Key: "operation", Value: "Close"},
		)
		return err
	}
	return nil
}
