package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

const (
	channelPrefix = "dashboard:"
)

// Invalidation tells open dashboards of an owner that their data changed.
type Invalidation struct {
	OwnerID string    `json:"owner_id"`
	At      time.Time `json:"at"`
}

type RedisPubSub struct {
	client       *redis.Client
	logger       *logger.Logger
	subscribers  map[string]*redis.PubSub // owner id -> subscription
	subscriberMu sync.RWMutex
}

func NewRedisPubSub(client *redis.Client, logger *logger.Logger) *RedisPubSub {
	return &RedisPubSub{
		client:      client,
		logger:      logger,
		subscribers: make(map[string]*redis.PubSub),
	}
}

func (ps *RedisPubSub) getChannelName(ownerID string) string {
	return channelPrefix + ownerID
}

// NotifyDashboard publishes an invalidation on the owner's channel.
func (ps *RedisPubSub) NotifyDashboard(ctx context.Context, ownerID string) error {
	message, err := json.Marshal(Invalidation{OwnerID: ownerID, At: time.Now()})
	if err != nil {
		return fmt.Errorf("failed to marshal invalidation: %w", err)
	}

	channel := ps.getChannelName(ownerID)
	if err := ps.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", channel, err)
	}

	return nil
}

// Subscribe calls callback for every invalidation of ownerID until ctx is
// done. A second subscription for the same owner is a no-op.
func (ps *RedisPubSub) Subscribe(ctx context.Context, ownerID string, callback func(Invalidation)) error {
	channel := ps.getChannelName(ownerID)

	ps.subscriberMu.Lock()
	if _, exists := ps.subscribers[ownerID]; exists {
		ps.subscriberMu.Unlock()
		return nil
	}
	sub := ps.client.Subscribe(ctx, channel)
	ps.subscribers[ownerID] = sub
	ps.subscriberMu.Unlock()

	go func() {
		defer func() {
			ps.logger.Debug("Closing dashboard subscription", zap.String("channel", channel))
			ps.release(ownerID, sub)
		}()

		ch := sub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var inv Invalidation
				if err := json.Unmarshal([]byte(msg.Payload), &inv); err != nil {
					ps.logger.Error("Failed to unmarshal invalidation", err, zap.String("channel", channel))
					continue
				}
				callback(inv)

			case <-ctx.Done():
				return
			}
		}
	}()

	ps.logger.Info("Subscribed to dashboard channel", zap.String("channel", channel))
	return nil
}

// Unsubscribe removes the subscription of an owner
func (ps *RedisPubSub) Unsubscribe(ownerID string) {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if sub, exists := ps.subscribers[ownerID]; exists {
		sub.Close()
		delete(ps.subscribers, ownerID)
	}
}

// release drops sub only if it is still the registered subscription of ownerID.
func (ps *RedisPubSub) release(ownerID string, sub *redis.PubSub) {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if current, exists := ps.subscribers[ownerID]; exists && current == sub {
		delete(ps.subscribers, ownerID)
	}
	sub.Close()
}

func (ps *RedisPubSub) Close() {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	for ownerID, sub := range ps.subscribers {
		sub.Close()
		delete(ps.subscribers, ownerID)
		ps.logger.Infof("Closed dashboard subscription: %s", ps.getChannelName(ownerID))
	}
}
