package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quickbank/quickbank/internal/models"
)

// NewRedisClient connects to Redis and verifies the connection before
// returning.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return rdb, nil
}

// RedisStore is the Redis-backed Store.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) SetAuthToken(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, KeyAuthToken, token, 0).Err(); err != nil {
		return fmt.Errorf("set auth token: %w", err)
	}
	return nil
}

func (s *RedisStore) GetAuthToken(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, KeyAuthToken).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get auth token: %w", err)
	}
	return val, nil
}

func (s *RedisStore) RemoveAuthToken(ctx context.Context) error {
	if err := s.client.Del(ctx, KeyAuthToken).Err(); err != nil {
		return fmt.Errorf("remove auth token: %w", err)
	}
	return nil
}

func (s *RedisStore) SetUserData(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user data: %w", err)
	}
	if err := s.client.Set(ctx, KeyUserData, data, 0).Err(); err != nil {
		return fmt.Errorf("set user data: %w", err)
	}
	return nil
}

func (s *RedisStore) GetUserData(ctx context.Context) (*models.User, error) {
	raw, err := s.client.Get(ctx, KeyUserData).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user data: %w", err)
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("decode user data: %w", err)
	}
	return &user, nil
}

func (s *RedisStore) RemoveUserData(ctx context.Context) error {
	if err := s.client.Del(ctx, KeyUserData).Err(); err != nil {
		return fmt.Errorf("remove user data: %w", err)
	}
	return nil
}

func (s *RedisStore) SetRememberMe(ctx context.Context, value bool) error {
	if err := s.client.Set(ctx, KeyRememberMe, strconv.FormatBool(value), 0).Err(); err != nil {
		return fmt.Errorf("set remember me: %w", err)
	}
	return nil
}

func (s *RedisStore) GetRememberMe(ctx context.Context) (bool, error) {
	val, err := s.client.Get(ctx, KeyRememberMe).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get remember me: %w", err)
	}
	return val == "true", nil
}

// ClearAll removes all managed keys in a single DEL so the caller never
// observes a partially cleared session.
func (s *RedisStore) ClearAll(ctx context.Context) error {
	if err := s.client.Del(ctx, KeyAuthToken, KeyUserData, KeyRememberMe).Err(); err != nil {
		return fmt.Errorf("clear session keys: %w", err)
	}
	return nil
}
