package repository

import (
	"context"

	"current-backend/internal/features/upload/models"
)

// EventPublisher hands finished uploads to the ingest pipeline.
type EventPublisher interface {
	PublishObjectCreated(ctx context.Context, event models.ObjectCreated) (string, error)
}
