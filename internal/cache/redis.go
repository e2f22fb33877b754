// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/tracing"
)

var ErrCacheMiss = errors.New("cache miss")

type Config struct {
	Addr     string
	Password string
	DB       int
}

var _ CacheInterface = (*Client)(nil)

type Client struct {
	client *redis.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	ctx, span := c.tracer.Start(ctx, "cache.Client.Set")
	defer span.End()

	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key: %w", err)
	}

	return nil
}

func (c *Client) GetDel(ctx context.Context, key string) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, "cache.Client.GetDel")
	defer span.End()

	value, err := c.client.GetDel(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get and delete key: %w", err)
	}

	return value, nil
}

func (c *Client) Ping(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "cache.Client.Ping")
	defer span.End()

	err := c.client.Ping(ctx).Err()

	available := 1.0
	if err != nil {
		available = 0
	}
	if mErr := c.monitor.SetDependencyAvailability(map[string]string{"component": "redis"}, available); mErr != nil {
		c.logger.Debugf("failed to record redis availability: %v", mErr)
	}

	return err
}

func (c *Client) Close() error {
	return c.client.Close()
}

// NewClient connects to redis and checks the connection before returning.
func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	c := new(Client)

	c.client = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx); err != nil {
		c.client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return c, nil
}
