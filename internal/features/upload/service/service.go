package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "current-backend/internal/common/errors"
	"current-backend/internal/common/logger"
	"current-backend/internal/common/validation"
	"current-backend/internal/features/upload/models"
	"current-backend/internal/features/upload/repository"
)

const (
	rawPrefix          = "raw/"
	missingFieldsError = "Missing required fields: title, artist, album, audio_filename"
)

// Presigner issues time limited upload URLs.
type Presigner interface {
	PresignPut(ctx context.Context, bucket, key string, ttl time.Duration) (string, error)
}

type UploadService interface {
	InitUpload(ctx context.Context, userID string, req *models.InitUploadRequest) (*models.InitUploadResponse, error)
	CompleteUpload(ctx context.Context, userID string, req *models.CompleteUploadRequest) (*models.CompleteUploadResponse, error)
}

type Config struct {
	Bucket string
	URLTTL time.Duration
}

type Option func(*uploadService)

// WithClock replaces time.Now, which stamps the object keys.
func WithClock(now func() time.Time) Option {
	return func(s *uploadService) { s.now = now }
}

type uploadService struct {
	presigner Presigner
	events    repository.EventPublisher
	cfg       Config
	now       func() time.Time
}

func NewUploadService(presigner Presigner, events repository.EventPublisher, cfg Config, opts ...Option) UploadService {
	if cfg.URLTTL <= 0 {
		cfg.URLTTL = 15 * time.Minute
	}
	s := &uploadService{
		presigner: presigner,
		events:    events,
		cfg:       cfg,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *uploadService) InitUpload(ctx context.Context, userID string, req *models.InitUploadRequest) (*models.InitUploadResponse, error) {
	meta := models.MetaFields{
		Title:       validation.CleanDisplay(req.Title),
		Artist:      validation.CleanDisplay(req.Artist),
		Album:       validation.CleanDisplay(req.Album),
		TrackNumber: req.TrackNumber,
		ReleaseYear: req.ReleaseYear,
	}
	audioFile := validation.CleanDisplay(req.AudioFilename)
	artFile := validation.CleanDisplay(req.ArtFilename)

	if meta.Title == "" || meta.Artist == "" || meta.Album == "" || audioFile == "" {
		return nil, apperrors.NewBadRequestError(missingFieldsError)
	}
	if err := validation.ValidateFilename(audioFile); err != nil {
		return nil, apperrors.NewValidationError("audio_filename", "is not a usable file name").WithPublicDetail(err.Error())
	}
	if artFile != "" {
		if err := validation.ValidateFilename(artFile); err != nil {
			return nil, apperrors.NewValidationError("art_filename", "is not a usable file name").WithPublicDetail(err.Error())
		}
	}
	if s.cfg.Bucket == "" {
		return nil, apperrors.NewConfigurationError("INGEST_BUCKET", nil)
	}

	prefix := fmt.Sprintf("%s%s/%s/%d__",
		rawPrefix, validation.SlugKey(meta.Artist), validation.SlugKey(meta.Album), s.now().Unix())

	resp := &models.InitUploadResponse{
		AudioKey:         prefix + audioFile,
		AudioContentType: contentTypeOrDefault(req.AudioContentType),
		ArtContentType:   contentTypeOrDefault(req.ArtContentType),
		MetaKey:          prefix + "meta.json",
		MetaFields:       meta,
	}

	var err error
	if resp.AudioPutURL, err = s.presign(ctx, resp.AudioKey); err != nil {
		return nil, err
	}
	if artFile != "" {
		artKey := prefix + artFile
		artURL, err := s.presign(ctx, artKey)
		if err != nil {
			return nil, err
		}
		resp.ArtKey, resp.ArtPutURL = &artKey, &artURL
	}
	if resp.MetaPutURL, err = s.presign(ctx, resp.MetaKey); err != nil {
		return nil, err
	}

	logger.Info().
		Str("user_id", userID).
		Str("audio_key", resp.AudioKey).
		Bool("with_art", resp.ArtKey != nil).
		Msg("Upload initiated")

	return resp, nil
}

func (s *uploadService) CompleteUpload(ctx context.Context, userID string, req *models.CompleteUploadRequest) (*models.CompleteUploadResponse, error) {
	key := strings.TrimSpace(req.AudioKey)
	if key == "" {
		return nil, apperrors.NewBadRequestError("Missing required fields: audio_key")
	}
	if !strings.HasPrefix(key, rawPrefix) || strings.Contains(key, "..") {
		return nil, apperrors.NewValidationError("audio_key", "must be a key returned by /uploads/init")
	}
	if !validation.IsAudioKey(key) {
		return nil, apperrors.NewValidationError("audio_key", "must name an .mp3 or .flac file")
	}
	if s.cfg.Bucket == "" {
		return nil, apperrors.NewConfigurationError("INGEST_BUCKET", nil)
	}

	event := models.ObjectCreated{
		Bucket: s.cfg.Bucket,
		Key:    key,
		Meta: models.MetaFields{
			Title:       validation.CleanDisplay(req.Title),
			Artist:      validation.CleanDisplay(req.Artist),
			Album:       validation.CleanDisplay(req.Album),
			TrackNumber: req.TrackNumber,
			ReleaseYear: req.ReleaseYear,
		},
	}

	id, err := s.events.PublishObjectCreated(ctx, event)
	if err != nil {
		return nil, apperrors.NewDatabaseError("publish upload event", err)
	}

	logger.Info().
		Str("user_id", userID).
		Str("audio_key", key).
		Str("event_id", id).
		Msg("Upload queued for ingest")

	return &models.CompleteUploadResponse{Status: "queued", AudioKey: key, EventID: id}, nil
}

func (s *uploadService) presign(ctx context.Context, key string) (string, error) {
	url, err := s.presigner.PresignPut(ctx, s.cfg.Bucket, key, s.cfg.URLTTL)
	if err != nil {
		return "", apperrors.NewStorageError("presign upload", err).WithDetail("key", key)
	}
	return url, nil
}

func contentTypeOrDefault(ct string) string {
	if ct = strings.TrimSpace(ct); ct != "" {
		return ct
	}
	return models.DefaultContentType
}
