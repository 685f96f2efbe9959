package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// StatusChannel is the redis channel carrying store open/closed transitions
const StatusChannel = "merchant-status"

// StatusChanged is published when a merchant's stored open/closed snapshot flips
type StatusChanged struct {
	MerchantID   string    `json:"merchantId"`
	MerchantCode string    `json:"merchantCode"`
	IsOpen       bool      `json:"isOpen"`
	Reason       string    `json:"reason,omitempty"`
	At           time.Time `json:"at"`
}

// Publisher sends status transitions to subscribers
type Publisher interface {
	PublishStatus(ctx context.Context, event StatusChanged) error
}

// RedisPublisher publishes events on a redis pub/sub channel
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client, channel: StatusChannel}
}

func (p *RedisPublisher) PublishStatus(ctx context.Context, event StatusChanged) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal status event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish status event: %w", err)
	}
	return nil
}

// Subscribe calls fn for every status event until ctx is done
func Subscribe(ctx context.Context, client *redis.Client, fn func(StatusChanged)) error {
	sub := client.Subscribe(ctx, StatusChannel)
	defer sub.Close()

	// wait for the subscription to be confirmed so no event is missed
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", StatusChannel, err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var event StatusChanged
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				continue
			}
			fn(event)
		}
	}
}

// NopPublisher drops events. Used when redis is not configured.
type NopPublisher struct{}

func (NopPublisher) PublishStatus(context.Context, StatusChanged) error { return nil }
