package delivery

import (
	"context"

	"laborlink/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher broadcasts notification payloads over Redis pub/sub. Each
// recipient has its own channel; socket gateways subscribe and forward to
// live client sessions. There is no delivery confirmation.
type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func (p *RedisPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	if err := p.rdb.Publish(ctx, topic, payload).Err(); err != nil {
		return errs.Wrap(err, "failed to publish to redis")
	}
	return nil
}
