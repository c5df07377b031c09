package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/susuregis/Chatbot/internal/model"
)

const keyPrefix = "session:"

// RedisStore хранит сессии в Redis как JSON с TTL, равным таймауту сессии.
type RedisStore struct {
	client  *redis.Client
	timeout time.Duration
}

// NewRedisStore подключается к Redis и проверяет соединение.
func NewRedisStore(ctx context.Context, addr, password string, timeout time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis недоступен: %w", err)
	}
	return &RedisStore{client: client, timeout: timeout}, nil
}

func key(chatID int64) string {
	return keyPrefix + strconv.FormatInt(chatID, 10)
}

// Get читает сессию пользователя.
func (s *RedisStore) Get(ctx context.Context, chatID int64) (*model.Session, error) {
	data, err := s.client.Get(ctx, key(chatID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать сессию %d: %w", chatID, err)
	}
	var sess model.Session
	if err := sonic.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("поврежденная сессия %d: %w", chatID, err)
	}
	return &sess, nil
}

// Save записывает сессию и продлевает ее TTL.
func (s *RedisStore) Save(ctx context.Context, sess *model.Session) error {
	sess.UpdatedAt = time.Now()
	data, err := sonic.Marshal(sess)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать сессию %d: %w", sess.ChatID, err)
	}
	if err := s.client.Set(ctx, key(sess.ChatID), data, s.timeout).Err(); err != nil {
		return fmt.Errorf("не удалось сохранить сессию %d: %w", sess.ChatID, err)
	}
	return nil
}

// Delete удаляет сессию пользователя.
func (s *RedisStore) Delete(ctx context.Context, chatID int64) error {
	if err := s.client.Del(ctx, key(chatID)).Err(); err != nil {
		return fmt.Errorf("не удалось удалить сессию %d: %w", chatID, err)
	}
	return nil
}

// Close закрывает соединение с Redis.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
