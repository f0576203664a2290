package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/capitalizeai/scoring-api/internal/api/dto"
	"github.com/capitalizeai/scoring-api/pkg/logger"
)

const (
	channelPrefix = "scorings:"
)

type RedisPubSub struct {
	client       *redis.Client
	logger       *logger.Logger
	subscribers  map[string]*redis.PubSub // Map of org ID to subscriber
	subscriberMu sync.RWMutex
}

func NewRedisPubSub(client *redis.Client, logger *logger.Logger) *RedisPubSub {
	return &RedisPubSub{
		client:      client,
		logger:      logger,
		subscribers: make(map[string]*redis.PubSub),
	}
}

func (ps *RedisPubSub) getChannelName(orgID string) string {
	return channelPrefix + orgID
}

// Publish publishes a completed scoring to the organization's Redis channel
func (ps *RedisPubSub) Publish(ctx context.Context, scoring *dto.ScoringRequestResponse) error {
	message, err := json.Marshal(scoring)
	if err != nil {
		return fmt.Errorf("failed to marshal scoring: %w", err)
	}

	channel := ps.getChannelName(scoring.OrgID)
	if err := ps.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", channel, err)
	}

	return nil
}

// Subscribe subscribes to completed scorings for a specific organization
func (ps *RedisPubSub) Subscribe(ctx context.Context, orgID string, callback func(*dto.ScoringRequestResponse)) error {
	channel := ps.getChannelName(orgID)

	// Check if we're already subscribed to this org's channel
	ps.subscriberMu.RLock()
	_, exists := ps.subscribers[orgID]
	ps.subscriberMu.RUnlock()
	if exists {
		ps.logger.Infof("Already subscribed to org channel: %s", channel)
		return nil
	}

	// Create new subscription
	pubsub := ps.client.Subscribe(ctx, channel)

	// Store the subscriber
	ps.subscriberMu.Lock()
	ps.subscribers[orgID] = pubsub
	ps.subscriberMu.Unlock()

	// Start receiving messages
	go func() {
		defer func() {
			ps.logger.Infof("Closing subscription for org channel: %s", channel)
			pubsub.Close()
			ps.subscriberMu.Lock()
			delete(ps.subscribers, orgID)
			ps.subscriberMu.Unlock()
		}()

		ch := pubsub.Channel()
		for {
			select {
			case msg := <-ch:
				var scoring dto.ScoringRequestResponse
				if err := json.Unmarshal([]byte(msg.Payload), &scoring); err != nil {
					ps.logger.Errorf("Failed to unmarshal scoring from channel %s: %v", channel, err)
					continue
				}
				callback(&scoring)

			case <-ctx.Done():
				return
			}
		}
	}()

	ps.logger.Infof("Subscribed to org channel: %s", channel)
	return nil
}

// Unsubscribe removes subscription for an organization
func (ps *RedisPubSub) Unsubscribe(orgID string) {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if pubsub, exists := ps.subscribers[orgID]; exists {
		pubsub.Close()
		delete(ps.subscribers, orgID)
		ps.logger.Infof("Unsubscribed from org channel: %s", ps.getChannelName(orgID))
	}
}

func (ps *RedisPubSub) Close() {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	for orgID, pubsub := range ps.subscribers {
		pubsub.Close()
		delete(ps.subscribers, orgID)
		ps.logger.Infof("Closed subscription for org channel: %s", ps.getChannelName(orgID))
	}
}
