package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"current-backend/internal/common/cache"
	apperrors "current-backend/internal/common/errors"
	"current-backend/internal/common/logger"
	"current-backend/internal/features/track/models"
	"current-backend/internal/features/track/repository"

	"github.com/google/uuid"
)

type TrackService interface {
	ListTracks(ctx context.Context) ([]*models.Track, error)
	StreamURL(ctx context.Context, trackID string) (string, error)
	RegisterTrack(ctx context.Context, input models.NewTrackInput) (*models.Track, error)
}

type Config struct {
	AudioBaseURL string
	CacheKey     string
	CacheTTL     time.Duration
}

type trackService struct {
	repo  repository.TrackRepository
	cache *cache.CacheService
	cfg   Config
	now   func() time.Time
}

func NewTrackService(repo repository.TrackRepository, cacheService *cache.CacheService, cfg Config) TrackService {
	return &trackService{
		repo:  repo,
		cache: cacheService,
		cfg:   cfg,
		now:   time.Now,
	}
}

func (s *trackService) ListTracks(ctx context.Context) ([]*models.Track, error) {
	load := func() (interface{}, error) {
		return s.repo.List(ctx)
	}

	if s.cache == nil || s.cfg.CacheTTL <= 0 {
		tracks, err := s.repo.List(ctx)
		if err != nil {
			return nil, apperrors.NewDatabaseError("list tracks", err)
		}
		return tracks, nil
	}

	var tracks []*models.Track
	hit, err := s.cache.GetOrSet(ctx, s.cfg.CacheKey, &tracks, s.cfg.CacheTTL, load)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list tracks", err)
	}
	logger.Debug().Bool("cache_hit", hit).Int("count", len(tracks)).Msg("Tracks listed")

	if tracks == nil {
		tracks = []*models.Track{}
	}
	return tracks, nil
}

func (s *trackService) StreamURL(ctx context.Context, trackID string) (string, error) {
	trackID = strings.TrimSpace(trackID)
	if trackID == "" {
		return "", apperrors.NewBadRequestError("Missing track_id in path")
	}

	track, err := s.repo.GetByID(ctx, trackID)
	if err != nil {
		if errors.Is(err, repository.ErrTrackNotFound) {
			return "", apperrors.NewTrackNotFoundError(trackID)
		}
		return "", apperrors.NewDatabaseError("get track", err)
	}

	if track.StreamPath == "" {
		return "", apperrors.NewInternalError("Track is missing 'stream_path' field", nil).
			WithDetail("track_id", trackID)
	}
	if s.cfg.AudioBaseURL == "" {
		return "", apperrors.NewConfigurationError("AUDIO_BASE_URL", nil)
	}

	return JoinURL(s.cfg.AudioBaseURL, track.StreamPath), nil
}

func (s *trackService) RegisterTrack(ctx context.Context, input models.NewTrackInput) (*models.Track, error) {
	if input.StreamPath == "" {
		return nil, apperrors.NewValidationError("stream_path", "is required")
	}

	track := &models.Track{
		ID:          NewTrackID(),
		Title:       input.Title,
		Artist:      input.Artist,
		Album:       input.Album,
		TrackNumber: input.TrackNumber,
		ReleaseYear: input.ReleaseYear,
		StreamPath:  input.StreamPath,
		SourceKey:   input.SourceKey,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.repo.Create(ctx, track); err != nil {
		return nil, apperrors.NewDatabaseError("create track", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, s.cfg.CacheKey); err != nil {
			logger.Warn().Err(err).Msg("Failed to invalidate tracks cache")
		}
	}

	logger.Info().Str("track_id", track.ID).Str("stream_path", track.StreamPath).Msg("Track registered")
	return track, nil
}

// NewTrackID returns an id of the form trk_<8 hex chars>.
func NewTrackID() string {
	return "trk_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// JoinURL joins base and path with exactly one slash between them.
func JoinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
