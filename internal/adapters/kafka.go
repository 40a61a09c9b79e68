package adapters

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"omok/internal/bootstrap"
)

// AdapterKafka publishes gameplay telemetry. With no brokers configured it
// is disabled and Emit does nothing.
type AdapterKafka struct {
	writer *kafka.Writer
	log    *zap.SugaredLogger
}

func NewAdapterKafka(cfg *bootstrap.Config, log *zap.SugaredLogger) *AdapterKafka {
	a := &AdapterKafka{log: log}
	if cfg.KafkaBrokers == "" {
		return a
	}
	a.writer = &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		Async:                  true,
		BatchTimeout:           kafkaBatchTimeout,
		Completion:             a.completion,
	}
	return a
}

const kafkaBatchTimeout = 10 * time.Millisecond

func (a *AdapterKafka) completion(messages []kafka.Message, err error) {
	if err != nil {
		a.log.Warnf("kafka emit: %d messages dropped: %v", len(messages), err)
	}
}

func (a *AdapterKafka) Enabled() bool {
	return a != nil && a.writer != nil
}

// Emit queues the event and returns. Delivery errors are logged by the
// writer's completion callback.
func (a *AdapterKafka) Emit(ctx context.Context, event string, payload map[string]any) {
	if !a.Enabled() {
		return
	}
	msg := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		msg[k] = v
	}
	msg["event"] = event
	msg["ts"] = time.Now().UTC()

	b, err := json.Marshal(msg)
	if err != nil {
		a.log.Errorf("kafka marshal %s: %v", event, err)
		return
	}

	if err := a.writer.WriteMessages(ctx, kafka.Message{Value: b}); err != nil {
		a.log.Warnf("kafka emit %s: %v", event, err)
	}
}

func (a *AdapterKafka) Close() error {
	if !a.Enabled() {
		return nil
	}
	return a.writer.Close()
}
