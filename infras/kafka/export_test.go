package kafka

import (
	"context"

	kafkaGo "github.com/segmentio/kafka-go"
)

type WriteFunc func(ctx context.Context, msgs ...kafkaGo.Message) error

func (f WriteFunc) WriteMessages(ctx context.Context, msgs ...kafkaGo.Message) error {
	return f(ctx, msgs...)
}

func (f WriteFunc) Close() error {
	return nil
}

func NewWithWriter(topic string, w WriteFunc) Client {
	return newClient(topic, w)
}
