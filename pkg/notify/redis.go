package notify

import (
	"context"
	"fmt"
	"qrscanner/pkg/domain"
	"time"

	"github.com/go-faster/jx"
	"github.com/redis/go-redis/v9"
)

// DefaultChannel is the pub/sub channel notifications are published on.
const DefaultChannel = "qrscanner:notifications"

// RedisOptions configure a Redis notifier.
type RedisOptions struct {
	// URL is a redis:// connection URL.
	URL string
	// Channel is the pub/sub channel. Defaults to DefaultChannel.
	Channel string
	// DialTimeout bounds connection attempts.
	DialTimeout time.Duration
	// WriteTimeout bounds each publish.
	WriteTimeout time.Duration
}

// Redis publishes notifications as JSON on a Redis pub/sub channel so other
// devices or services can surface them.
type Redis struct {
	client  *redis.Client
	channel string
	now     func() time.Time
}

// NewRedis connects to Redis and checks the connection.
func NewRedis(ctx context.Context, opts RedisOptions) (*Redis, error) {
	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("could not parse redis URL: %w", err)
	}
	if opts.DialTimeout > 0 {
		redisOpts.DialTimeout = opts.DialTimeout
	}
	if opts.WriteTimeout > 0 {
		redisOpts.WriteTimeout = opts.WriteTimeout
	}

	client := redis.NewClient(redisOpts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	channel := opts.Channel
	if channel == "" {
		channel = DefaultChannel
	}

	return &Redis{client: client, channel: channel, now: time.Now}, nil
}

// Channel returns the channel notifications are published on.
func (r *Redis) Channel() string { return r.channel }

// Notify publishes n.
func (r *Redis) Notify(ctx context.Context, n domain.Notification) error {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("title")
	e.Str(n.Title)
	if n.Body != "" {
		e.FieldStart("body")
		e.Str(n.Body)
	}
	e.FieldStart("at")
	e.Str(r.now().UTC().Format(time.RFC3339))
	e.ObjEnd()

	if err := r.client.Publish(ctx, r.channel, e.Bytes()).Err(); err != nil {
		return fmt.Errorf("could not publish notification: %w", err)
	}

	return nil
}

// Close closes the Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
