package consumers

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sbilibin2017/blog-ms/internal/logger"
	"github.com/sbilibin2017/blog-ms/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=user_events.go -destination=mock_user_events.go -package=consumers

// KafkaReader defines a Kafka reader abstraction.
type KafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// SignUpHandler reacts to new users.
type SignUpHandler interface {
	HandleUserSignedUp(ctx context.Context, evt models.UserSignedUpEvent) error
}

// UserEventsConsumer feeds sign-up events to a SignUpHandler.
type UserEventsConsumer struct {
	reader     KafkaReader
	handler    SignUpHandler
	newBackOff func() backoff.BackOff
}

// NewUserEventsConsumer creates a new UserEventsConsumer.
func NewUserEventsConsumer(reader KafkaReader, handler SignUpHandler) *UserEventsConsumer {
	return &UserEventsConsumer{reader: reader, handler: handler, newBackOff: retryBackOff}
}

// retryBackOff retries a failing message until it is handled.
func retryBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 0
	return b
}

// Run consumes messages until ctx is cancelled. Offsets are committed in
// order: a message the handler fails on is retried with backoff and the
// next one is not fetched until it succeeds. Unreadable messages are
// committed and skipped.
func (c *UserEventsConsumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			logger.Log.Errorw("failed to fetch message", "error", err)
			return err
		}

		if err := c.handleWithRetry(ctx, msg); err != nil {
			// only cancellation ends the retries; the message stays uncommitted
			return nil
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Log.Errorw("failed to commit message", "offset", msg.Offset, "error", err)
		}
	}
}

func (c *UserEventsConsumer) handleWithRetry(ctx context.Context, msg kafka.Message) error {
	return backoff.RetryNotify(
		func() error { return c.handle(ctx, msg) },
		backoff.WithContext(c.newBackOff(), ctx),
		func(err error, next time.Duration) {
			logger.Log.Errorw("failed to handle sign-up event",
				"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset,
				"retry_in", next, "error", err)
		},
	)
}

func (c *UserEventsConsumer) handle(ctx context.Context, msg kafka.Message) error {
	var evt models.UserSignedUpEvent
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		logger.Log.Warnw("skipping malformed sign-up event", "offset", msg.Offset, "error", err)
		return nil
	}

	if evt.UserID <= 0 {
		logger.Log.Warnw("skipping sign-up event without user", "event_id", evt.EventID)
		return nil
	}

	return c.handler.HandleUserSignedUp(ctx, evt)
}
