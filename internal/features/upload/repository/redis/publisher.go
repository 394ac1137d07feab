package redis

import (
	"context"

	"current-backend/internal/features/upload/models"
	"current-backend/internal/features/upload/repository"

	"github.com/redis/go-redis/v9"
)

// Entries beyond this are trimmed approximately on every add.
const streamMaxLen = 10000

type streamPublisher struct {
	client *redis.Client
	stream string
}

func NewStreamPublisher(client *redis.Client, stream string) repository.EventPublisher {
	return &streamPublisher{client: client, stream: stream}
}

func (p *streamPublisher) PublishObjectCreated(ctx context.Context, event models.ObjectCreated) (string, error) {
	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: event.Values(),
	}).Result()
}
