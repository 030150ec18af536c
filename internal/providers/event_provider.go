package providers

import (
	"context"
	json "github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
	"mindcare/internal/structures"
	"time"
)

const (
	EventCrisisDetected = "crisis.detected"
	EventMoodLogged     = "mood.logged"
)

// Event is the payload published for domain events. It never carries
// message text or notes.
type Event struct {
	Type       string            `json:"type"`
	UserID     string            `json:"user_id"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

type EventPublisherInterface interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaEventPublisher struct {
	writer messageWriter
	logger Logger
}

func NewEventPublisher(conf *structures.Config, logger Logger) EventPublisherInterface {
	if !conf.Events.Enabled {
		logger.Infof(TypeApp, "Event publishing disabled")
		return &noopPublisher{}
	}

	logger.Infof(TypeApp, "Publishing events to %v topic %s", conf.Events.Brokers, conf.Events.Topic)
	return &KafkaEventPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(conf.Events.Brokers...),
			Topic:                  conf.Events.Topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			BatchTimeout:           50 * time.Millisecond,
		},
		logger: logger,
	}
}

// Publish keys messages by user so that one user's events stay ordered.
func (p *KafkaEventPublisher) Publish(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.UserID),
		Value: value,
		Time:  event.OccurredAt,
	})
}

func (p *KafkaEventPublisher) Close() error {
	return p.writer.Close()
}

type noopPublisher struct{}

func (n *noopPublisher) Publish(_ context.Context, _ Event) error { return nil }
func (n *noopPublisher) Close() error                             { return nil }
