package repository

import (
	"context"
	"errors"

	"current-backend/internal/features/user/models"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	// ErrConflict is returned when a conditional update keeps losing to
	// concurrent writers.
	ErrConflict = errors.New("profile update conflict")
	// ErrAlreadyArtist is returned by BeginArtistApplication together with
	// the unchanged profile when the user can already publish.
	ErrAlreadyArtist = errors.New("already an artist or admin")
)

// ProfileRepository stores user profiles together with the pending artist
// application index. Every mutating method applies the profile write and the
// index change atomically.
type ProfileRepository interface {
	Get(ctx context.Context, subjectID string) (*models.UserProfile, error)
	UpsertFromIdentity(ctx context.Context, claims models.IdentityClaims) (*models.UserProfile, error)
	BeginArtistApplication(ctx context.Context, subjectID string, app models.ArtistApplication) (*models.UserProfile, error)
	ListPendingApplications(ctx context.Context) ([]*models.UserProfile, error)
	ApproveArtist(ctx context.Context, subjectID string) (*models.UserProfile, error)
	RejectArtist(ctx context.Context, subjectID, reason string) (*models.UserProfile, error)
}
