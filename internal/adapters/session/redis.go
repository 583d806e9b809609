// internal/adapters/session/redis.go
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/easyboard/easyboard-go/internal/core/ports"
)

// DefaultTokenKey is the fixed name the bearer token is stored under.
const DefaultTokenKey = "easyboard:token"

// RedisStore keeps the token in Redis and publishes every replacement on a
// companion channel, so other processes sharing the store see logins and
// logouts as they happen.
type RedisStore struct {
	client  *redis.Client
	key     string
	channel string
	logger  *slog.Logger

	mu     sync.Mutex
	subs   []chan string
	pubsub *redis.PubSub
}

// Statically assert that *RedisStore implements the TokenStore port.
var _ ports.TokenStore = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed token store under the given key
// (DefaultTokenKey when empty) and starts listening for external changes.
func NewRedisStore(client *redis.Client, key string, logger *slog.Logger) *RedisStore {
	if key == "" {
		key = DefaultTokenKey
	}
	s := &RedisStore{
		client:  client,
		key:     key,
		channel: key + ":changes",
		logger:  logger.With(slog.String("component", "token_store")),
	}
	s.pubsub = client.Subscribe(context.Background(), s.channel)
	go s.listen()
	return s
}

func (s *RedisStore) listen() {
	for msg := range s.pubsub.Channel() {
		s.mu.Lock()
		subs := make([]chan string, len(s.subs))
		copy(subs, s.subs)
		s.mu.Unlock()

		for _, ch := range subs {
			select {
			case ch <- msg.Payload:
			default:
			}
		}
	}
}

// Load returns the stored token; a missing key is simply "".
func (s *RedisStore) Load(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get: %w", err)
	}
	return token, nil
}

// Save replaces the stored token and publishes the change.
func (s *RedisStore) Save(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	if err := s.client.Publish(ctx, s.channel, token).Err(); err != nil {
		s.logger.Warn("failed to publish token change", slog.String("error", err.Error()))
	}
	return nil
}

// Clear removes the stored token and publishes an empty value.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	if err := s.client.Publish(ctx, s.channel, "").Err(); err != nil {
		s.logger.Warn("failed to publish token change", slog.String("error", err.Error()))
	}
	return nil
}

// Changes returns a channel receiving every token replacement, including
// ones made by other processes.
func (s *RedisStore) Changes() <-chan string {
	ch := make(chan string, changeBuffer)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

// Close stops the change listener.
func (s *RedisStore) Close() error {
	return s.pubsub.Close()
}
