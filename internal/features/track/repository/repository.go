package repository

import (
	"context"
	"errors"

	"current-backend/internal/features/track/models"
)

var ErrTrackNotFound = errors.New("track not found")

type TrackRepository interface {
	Create(ctx context.Context, track *models.Track) error
	GetByID(ctx context.Context, id string) (*models.Track, error)
	// List returns every track, newest first.
	List(ctx context.Context) ([]*models.Track, error)
}
