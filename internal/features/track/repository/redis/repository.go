package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"current-backend/internal/features/track/models"
	"current-backend/internal/features/track/repository"
	platformredis "current-backend/internal/platform/redis"

	"github.com/redis/go-redis/v9"
)

type trackRepository struct {
	client *redis.Client
	keys   platformredis.Keyspace
}

func NewTrackRepository(client *redis.Client, table string) repository.TrackRepository {
	return &trackRepository{
		client: client,
		keys:   platformredis.Keyspace(table),
	}
}

func (r *trackRepository) trackKey(id string) string {
	return r.keys.Key("track", id)
}

func (r *trackRepository) indexKey() string {
	return r.keys.Key("all")
}

func (r *trackRepository) Create(ctx context.Context, track *models.Track) error {
	data, err := json.Marshal(track)
	if err != nil {
		return fmt.Errorf("encode track: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.trackKey(track.ID), data, 0)
		pipe.ZAdd(ctx, r.indexKey(), redis.Z{
			Score:  float64(track.CreatedAt.UnixMilli()),
			Member: track.ID,
		})
		return nil
	})
	return err
}

func (r *trackRepository) GetByID(ctx context.Context, id string) (*models.Track, error) {
	data, err := r.client.Get(ctx, r.trackKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrTrackNotFound
		}
		return nil, err
	}

	var track models.Track
	if err := json.Unmarshal(data, &track); err != nil {
		return nil, fmt.Errorf("decode track %s: %w", id, err)
	}
	return &track, nil
}

func (r *trackRepository) List(ctx context.Context) ([]*models.Track, error) {
	ids, err := r.client.ZRevRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	tracks := make([]*models.Track, 0, len(ids))
	if len(ids) == 0 {
		return tracks, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.trackKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var track models.Track
		if err := json.Unmarshal([]byte(s), &track); err != nil {
			return nil, fmt.Errorf("decode track %s: %w", ids[i], err)
		}
		tracks = append(tracks, &track)
	}

	return tracks, nil
}
