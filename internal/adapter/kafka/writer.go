package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/couchcryptid/satcom-forecast/internal/config"
	"github.com/couchcryptid/satcom-forecast/internal/domain"
	"github.com/couchcryptid/satcom-forecast/internal/observability"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

// ErrSinkUnavailable is returned while the sink circuit breaker is open.
var ErrSinkUnavailable = errors.New("sink unavailable")

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Writer produces messages to a Kafka topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer  messageWriter
	breaker *gobreaker.CircuitBreaker[struct{}]
	logger  *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic, guarded
// by a circuit breaker that opens after BreakerMaxFailures consecutive
// write failures.
func NewWriter(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return newWriter(w, cfg, logger, metrics)
}

func newWriter(w messageWriter, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Writer {
	maxFailures := uint32(cfg.BreakerMaxFailures)
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "kafka-sink",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
			if to == gobreaker.StateOpen {
				metrics.SinkBreakerOpen.Set(1)
			} else {
				metrics.SinkBreakerOpen.Set(0)
			}
		},
		IsSuccessful: func(err error) bool {
			// a cancelled shutdown says nothing about broker health
			return err == nil || errors.Is(err, context.Canceled)
		},
	})
	return &Writer{writer: w, breaker: cb, logger: logger}
}

// LoadBatch serializes and publishes multiple replies to the sink Kafka
// topic in a single WriteMessages call.
func (w *Writer) LoadBatch(ctx context.Context, replies []domain.RenderReply) error {
	if len(replies) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(replies))
	for i := range replies {
		msg, err := serializeToMessage(replies[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}

	_, err := w.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, w.writer.WriteMessages(ctx, msgs...)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
	}
	return err
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a RenderReply into a Kafka message keyed by
// the originating request ID.
func serializeToMessage(reply domain.RenderReply) (kafkago.Message, error) {
	data, err := json.Marshal(reply)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize render reply: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(reply.RequestID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "mode", Value: []byte(reply.Mode)},
			{Key: "segment_count", Value: []byte(strconv.Itoa(len(reply.Segments)))},
			{Key: "rendered_at", Value: []byte(reply.RenderedAt.Format(time.RFC3339))},
		},
	}, nil
}
