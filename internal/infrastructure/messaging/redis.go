package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Tourment0412/gestion-perfil-micro/internal/config"
)

// Handler processes one raw event body. A nil return acknowledges the
// entry; a non-nil return leaves it pending so the stream redelivers it.
type Handler func(ctx context.Context, payload []byte) error

// StreamConsumer consumes lifecycle events from a redis stream through a
// consumer group, giving at-least-once delivery: entries are acknowledged
// only after the handler succeeds, and stale pending entries are reclaimed
// and retried. Entries that exhaust max_deliveries are acknowledged and
// logged at error level instead of looping forever.
type StreamConsumer struct {
	client  *redis.Client
	cfg     *config.RedisConfig
	logger  *zap.Logger
	handler Handler
}

// NewStreamConsumer connects to redis and prepares a consumer for the
// configured stream and group.
func NewStreamConsumer(cfg *config.RedisConfig, logger *zap.Logger, handler Handler) (*StreamConsumer, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &StreamConsumer{
		client:  client,
		cfg:     cfg,
		logger:  logger,
		handler: handler,
	}, nil
}

// Start blocks consuming the stream until ctx is cancelled.
func (c *StreamConsumer) Start(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.cfg.Stream, c.cfg.Group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	c.logger.Info("Stream consumer started",
		zap.String("stream", c.cfg.Stream),
		zap.String("group", c.cfg.Group),
		zap.String("consumer", c.cfg.Consumer),
	)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Stream consumer stopped")
			return nil
		default:
		}

		c.retryPending(ctx)

		streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.cfg.Group,
			Consumer: c.cfg.Consumer,
			Streams:  []string{c.cfg.Stream, ">"},
			Count:    10,
			Block:    5 * time.Second,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
				continue
			}
			c.logger.Error("Failed to read from stream", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				c.process(ctx, msg)
			}
		}
	}
}

// retryPending reclaims entries that have been pending longer than
// min_idle (for example after a crash between read and ack) and runs them
// through the handler again.
func (c *StreamConsumer) retryPending(ctx context.Context) {
	pending, err := c.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: c.cfg.Stream,
		Group:  c.cfg.Group,
		Idle:   c.cfg.MinIdle.Duration(),
		Start:  "-",
		End:    "+",
		Count:  10,
	}).Result()
	if err != nil || len(pending) == 0 {
		return
	}

	for _, entry := range pending {
		if c.cfg.MaxDeliveries > 0 && entry.RetryCount >= c.cfg.MaxDeliveries {
			// Logged dead-letter: give up on the entry but keep its content
			// in the log for diagnosis.
			c.logger.Error("Event exceeded max deliveries, discarding",
				zap.String("message_id", entry.ID),
				zap.Int64("deliveries", entry.RetryCount),
			)
			c.client.XAck(ctx, c.cfg.Stream, c.cfg.Group, entry.ID)
			continue
		}

		claimed, err := c.client.XClaim(ctx, &redis.XClaimArgs{
			Stream:   c.cfg.Stream,
			Group:    c.cfg.Group,
			Consumer: c.cfg.Consumer,
			MinIdle:  c.cfg.MinIdle.Duration(),
			Messages: []string{entry.ID},
		}).Result()
		if err != nil {
			c.logger.Warn("Failed to claim pending event", zap.String("message_id", entry.ID), zap.Error(err))
			continue
		}

		for _, msg := range claimed {
			c.process(ctx, msg)
		}
	}
}

// process runs one stream entry through the handler and acknowledges it on
// success.
func (c *StreamConsumer) process(ctx context.Context, msg redis.XMessage) {
	data, ok := msg.Values["data"].(string)
	if !ok {
		c.logger.Warn("Stream entry has no data field, discarding", zap.String("message_id", msg.ID))
		c.client.XAck(ctx, c.cfg.Stream, c.cfg.Group, msg.ID)
		return
	}

	if err := c.handler(ctx, []byte(data)); err != nil {
		// Not acknowledged: the entry stays pending and is retried.
		c.logger.Error("Event handler failed", zap.String("message_id", msg.ID), zap.Error(err))
		return
	}

	c.client.XAck(ctx, c.cfg.Stream, c.cfg.Group, msg.ID)
}

// Close closes the redis client
func (c *StreamConsumer) Close() error {
	return c.client.Close()
}
