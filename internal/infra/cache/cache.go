// Package cache keeps short-lived JSON responses of slow upstreams in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultDialTimeout  = 5 * time.Second
	defaultReadTimeout  = 3 * time.Second
	defaultWriteTimeout = 3 * time.Second

	keyPrefix = "surfshop:"
)

var (
	// ErrEmptyAddr возвращается, если адрес Redis не задан
	ErrEmptyAddr = errors.New("cache: redis addr is empty")

	// ErrCodec возвращается при ошибке (де)сериализации значения
	ErrCodec = errors.New("cache: codec error")
)

// NewRedisClient создает клиент и проверяет соединение командой PING
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, ErrEmptyAddr
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  defaultDialTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), defaultDialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: ping redis: %w", err)
	}

	return client, nil
}

// Redis JSON кэш поверх go-redis
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis создает кэш с общим временем жизни записей
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (c *Redis) key(name string) string {
	return keyPrefix + name
}

// Get читает значение в dest. found=false, если ключа нет или он истёк.
func (c *Redis) Get(ctx context.Context, name string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, c.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache: get %s: %w", name, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("%w: decode %s: %v", ErrCodec, name, err)
	}

	return true, nil
}

// Set сохраняет значение как JSON
func (c *Redis) Set(ctx context.Context, name string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrCodec, name, err)
	}

	if err := c.client.Set(ctx, c.key(name), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", name, err)
	}
	return nil
}

// Nop кэш-заглушка, когда Redis выключен в конфигурации
type Nop struct{}

func (Nop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }

func (Nop) Set(context.Context, string, interface{}) error { return nil }
