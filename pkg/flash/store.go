// Package flash carries one-shot user messages across a POST/redirect/GET
// cycle. Messages live in Redis under an anonymous session id that the
// browser holds in a signed cookie.
package flash

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Category string

const (
	CategorySuccess Category = "success"
	CategoryError   Category = "danger"
	CategoryWarning Category = "warning"
	CategoryInfo    Category = "info"
)

type Message struct {
	Category Category `json:"category"`
	Text     string   `json:"text"`
}

func Success(text string) Message { return Message{Category: CategorySuccess, Text: text} }
func Error(text string) Message   { return Message{Category: CategoryError, Text: text} }
func Warning(text string) Message { return Message{Category: CategoryWarning, Text: text} }
func Info(text string) Message    { return Message{Category: CategoryInfo, Text: text} }

type Store interface {
	Add(ctx context.Context, sessionID string, msg Message) error
	Pop(ctx context.Context, sessionID string) ([]Message, error)
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func key(sessionID string) string {
	return "flash:" + sessionID
}

func (s *RedisStore) Add(ctx context.Context, sessionID string, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key(sessionID), payload)
		pipe.Expire(ctx, key(sessionID), s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("store flash: %w", err)
	}
	return nil
}

// Pop returns the pending messages in insertion order and clears them.
func (s *RedisStore) Pop(ctx context.Context, sessionID string) ([]Message, error) {
	var values *redis.StringSliceCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		values = pipe.LRange(ctx, key(sessionID), 0, -1)
		pipe.Del(ctx, key(sessionID))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("pop flash: %w", err)
	}

	messages := make([]Message, 0, len(values.Val()))
	for _, raw := range values.Val() {
		var msg Message
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
