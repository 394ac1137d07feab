package workers

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"current-backend/internal/common/logger"
	"current-backend/internal/common/validation"
	trackmodels "current-backend/internal/features/track/models"
	uploadmodels "current-backend/internal/features/upload/models"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultGroup    = "ingest"
	DefaultConsumer = "ingest_worker_1"

	audioPrefix = "tracks/"
)

// ObjectCopier copies an object between buckets.
type ObjectCopier interface {
	Copy(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string) error
}

// TrackRegistrar stores a new catalog entry.
type TrackRegistrar interface {
	RegisterTrack(ctx context.Context, input trackmodels.NewTrackInput) (*trackmodels.Track, error)
}

type IngestConfig struct {
	Stream      string
	Group       string
	Consumer    string
	AudioBucket string

	// Block is how long one read waits for new entries. Negative means
	// do not block.
	Block time.Duration
}

// IngestWorker moves finished uploads into the audio bucket and registers
// them as tracks.
type IngestWorker struct {
	rdb    *redis.Client
	copier ObjectCopier
	tracks TrackRegistrar
	cfg    IngestConfig
}

func NewIngestWorker(rdb *redis.Client, copier ObjectCopier, tracks TrackRegistrar, cfg IngestConfig) *IngestWorker {
	if cfg.Group == "" {
		cfg.Group = DefaultGroup
	}
	if cfg.Consumer == "" {
		cfg.Consumer = DefaultConsumer
	}
	if cfg.Block == 0 {
		cfg.Block = 5 * time.Second
	}
	return &IngestWorker{
		rdb:    rdb,
		copier: copier,
		tracks: tracks,
		cfg:    cfg,
	}
}

// Start consumes the upload stream until ctx is cancelled.
func (w *IngestWorker) Start(ctx context.Context) {
	if err := w.ensureGroup(ctx); err != nil {
		logger.Error().Err(err).Str("stream", w.cfg.Stream).Msg("Failed to create consumer group")
	}

	logger.Info().Str("stream", w.cfg.Stream).Str("group", w.cfg.Group).Msg("Starting ingest worker")

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Stopping ingest worker")
			return
		default:
		}

		if _, err := w.Poll(ctx); err != nil {
			if ctx.Err() != nil {
				continue
			}
			logger.Error().Err(err).Msg("Failed to read upload stream")
			time.Sleep(time.Second)
		}
	}
}

func (w *IngestWorker) ensureGroup(ctx context.Context) error {
	err := w.rdb.XGroupCreateMkStream(ctx, w.cfg.Stream, w.cfg.Group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

// Poll reads one batch from the stream, processes it and acknowledges every
// entry whether or not processing succeeded. It returns the number of entries
// handled.
func (w *IngestWorker) Poll(ctx context.Context) (int, error) {
	entries, err := w.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    w.cfg.Group,
		Consumer: w.cfg.Consumer,
		Streams:  []string{w.cfg.Stream, ">"},
		Count:    10,
		Block:    w.cfg.Block,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}

	handled := 0
	for _, stream := range entries {
		for _, msg := range stream.Messages {
			if err := w.processMessage(ctx, msg.Values); err != nil {
				logger.Error().Err(err).Str("message_id", msg.ID).Msg("Ingest failed")
			}
			if err := w.rdb.XAck(ctx, w.cfg.Stream, w.cfg.Group, msg.ID).Err(); err != nil {
				logger.Warn().Err(err).Str("message_id", msg.ID).Msg("Failed to ack upload event")
			}
			handled++
		}
	}
	return handled, nil
}

func (w *IngestWorker) processMessage(ctx context.Context, values map[string]interface{}) error {
	event, ok := uploadmodels.ParseObjectCreated(values)
	if !ok {
		logger.Debug().Interface("values", values).Msg("Skipping unknown upload event")
		return nil
	}
	_, err := w.Ingest(ctx, event)
	return err
}

// Ingest copies one uploaded object into the audio bucket and registers it.
// Non-audio objects are skipped and yield a nil track.
func (w *IngestWorker) Ingest(ctx context.Context, event uploadmodels.ObjectCreated) (*trackmodels.Track, error) {
	if !validation.IsAudioKey(event.Key) {
		logger.Info().Str("key", event.Key).Msg("Skipping non-audio file")
		return nil, nil
	}
	if w.cfg.AudioBucket == "" {
		return nil, fmt.Errorf("AUDIO_BUCKET is not configured")
	}

	filename := path.Base(event.Key)
	destKey := audioPrefix + filename

	logger.Info().
		Str("src", event.Bucket+"/"+event.Key).
		Str("dst", w.cfg.AudioBucket+"/"+destKey).
		Msg("Copying upload to audio bucket")

	if err := w.copier.Copy(ctx, event.Bucket, event.Key, w.cfg.AudioBucket, destKey); err != nil {
		return nil, err
	}

	title := event.Meta.Title
	if title == "" {
		title = validation.TitleFromKey(event.Key)
	}

	track, err := w.tracks.RegisterTrack(ctx, trackmodels.NewTrackInput{
		Title:       title,
		Artist:      event.Meta.Artist,
		Album:       event.Meta.Album,
		TrackNumber: event.Meta.TrackNumber.Value,
		ReleaseYear: event.Meta.ReleaseYear.Value,
		StreamPath:  destKey,
		SourceKey:   event.Key,
	})
	if err != nil {
		return nil, fmt.Errorf("register track for %s: %w", event.Key, err)
	}
	return track, nil
}
