package service

import (
	"context"
	"errors"
	"strings"

	apperrors "current-backend/internal/common/errors"
	"current-backend/internal/common/logger"
	"current-backend/internal/common/validation"
	"current-backend/internal/features/auth/google"
	"current-backend/internal/features/auth/token"
	"current-backend/internal/features/user/mapper"
	"current-backend/internal/features/user/models"
	"current-backend/internal/features/user/repository"
)

const alreadyArtistMessage = "Already an artist/admin."

// IdentityVerifier validates an external identity assertion.
type IdentityVerifier interface {
	VerifyAssertion(ctx context.Context, raw string) (*google.Identity, error)
}

// TokenIssuer mints session credentials.
type TokenIssuer interface {
	Issue(subjectID, email, role string) (string, error)
}

type UserService interface {
	Login(ctx context.Context, credential string) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, subjectID string) (*models.UserResponse, error)
	ApplyForArtist(ctx context.Context, subjectID string, req *models.ArtistApplyRequest) (*models.ApplyResponse, error)
	ListPendingApplications(ctx context.Context) ([]*models.UserResponse, error)
	ApproveArtist(ctx context.Context, subjectID string) (*models.UserResponse, error)
	RejectArtist(ctx context.Context, subjectID, reason string) (*models.UserResponse, error)
}

type userService struct {
	repo     repository.ProfileRepository
	verifier IdentityVerifier
	tokens   TokenIssuer
}

func NewUserService(repo repository.ProfileRepository, verifier IdentityVerifier, tokens TokenIssuer) UserService {
	return &userService{
		repo:     repo,
		verifier: verifier,
		tokens:   tokens,
	}
}

func (s *userService) Login(ctx context.Context, credential string) (*models.AuthResponse, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, apperrors.NewBadRequestError("Missing credential")
	}

	identity, err := s.verifier.VerifyAssertion(ctx, credential)
	if err != nil {
		if errors.Is(err, google.ErrMissingClientID) {
			return nil, apperrors.NewConfigurationError("GOOGLE_CLIENT_ID", err)
		}
		return nil, apperrors.NewUnauthorizedError("Google token verification failed", err)
	}

	profile, err := s.repo.UpsertFromIdentity(ctx, models.IdentityClaims{
		SubjectID:  identity.SubjectID,
		Email:      identity.Email,
		Name:       identity.Name,
		PictureURL: identity.PictureURL,
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError("upsert profile", err)
	}

	signed, err := s.issue(profile)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("sub", profile.SubjectID).Str("role", string(profile.Role)).Msg("User signed in")

	return &models.AuthResponse{Token: signed, User: mapper.ToUserResponse(profile)}, nil
}

func (s *userService) GetProfile(ctx context.Context, subjectID string) (*models.UserResponse, error) {
	profile, err := s.repo.Get(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, apperrors.NewUnauthorizedError("User not found", err)
		}
		return nil, apperrors.NewDatabaseError("get profile", err)
	}

	return mapper.ToUserResponse(profile), nil
}

func (s *userService) ApplyForArtist(ctx context.Context, subjectID string, req *models.ArtistApplyRequest) (*models.ApplyResponse, error) {
	app, err := buildApplication(req)
	if err != nil {
		return nil, err
	}

	profile, err := s.repo.BeginArtistApplication(ctx, subjectID, *app)
	switch {
	case errors.Is(err, repository.ErrAlreadyArtist):
		return &models.ApplyResponse{
			User:    mapper.ToUserResponse(profile),
			Message: alreadyArtistMessage,
		}, nil
	case errors.Is(err, repository.ErrProfileNotFound):
		return nil, apperrors.NewUnauthorizedError("User not found", err)
	case err != nil:
		return nil, apperrors.NewDatabaseError("begin artist application", err)
	}

	signed, err := s.issue(profile)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("sub", subjectID).Msg("Artist application submitted")

	return &models.ApplyResponse{Token: signed, User: mapper.ToUserResponse(profile)}, nil
}

func (s *userService) ListPendingApplications(ctx context.Context) ([]*models.UserResponse, error) {
	profiles, err := s.repo.ListPendingApplications(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list pending applications", err)
	}
	return mapper.ToUserResponses(profiles), nil
}

func (s *userService) ApproveArtist(ctx context.Context, subjectID string) (*models.UserResponse, error) {
	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" {
		return nil, apperrors.NewBadRequestError("Missing user sub")
	}

	profile, err := s.repo.ApproveArtist(ctx, subjectID)
	if err != nil {
		return nil, decisionError("Approve failed", subjectID, err)
	}

	logger.Info().Str("sub", subjectID).Msg("Artist application approved")
	return mapper.ToUserResponse(profile), nil
}

func (s *userService) RejectArtist(ctx context.Context, subjectID, reason string) (*models.UserResponse, error) {
	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" {
		return nil, apperrors.NewBadRequestError("Missing user sub")
	}
	reason = strings.TrimSpace(reason)

	profile, err := s.repo.RejectArtist(ctx, subjectID, reason)
	if err != nil {
		return nil, decisionError("Reject failed", subjectID, err)
	}

	logger.Info().Str("sub", subjectID).Str("reason", profile.ArtistRejectionReason).Msg("Artist application rejected")
	return mapper.ToUserResponse(profile), nil
}

func (s *userService) issue(profile *models.UserProfile) (string, error) {
	signed, err := s.tokens.Issue(profile.SubjectID, profile.Email, string(profile.Role))
	if err != nil {
		if errors.Is(err, token.ErrMissingSecret) {
			return "", apperrors.NewConfigurationError("JWT_SECRET", err)
		}
		return "", apperrors.NewInternalError("Failed to issue token", err)
	}
	return signed, nil
}

func buildApplication(req *models.ArtistApplyRequest) (*models.ArtistApplication, error) {
	if req == nil {
		req = &models.ArtistApplyRequest{}
	}

	app := &models.ArtistApplication{
		DisplayName: strings.TrimSpace(req.DisplayName),
		Bio:         strings.TrimSpace(req.Bio),
		Links:       strings.TrimSpace(req.Links),
		Genres:      strings.TrimSpace(req.Genres),
		Location:    strings.TrimSpace(req.Location),
		FullName:    strings.TrimSpace(req.FullName),
	}

	if err := validation.ValidateDisplayName(app.DisplayName); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	return app, nil
}

// decisionError maps an admin decision failure. The store error text stays in
// the logs; callers get a generic detail.
func decisionError(message, subjectID string, err error) error {
	if errors.Is(err, repository.ErrProfileNotFound) {
		return apperrors.NewProfileNotFoundError(subjectID)
	}
	return apperrors.NewInternalError(message, err).
		WithPublicDetail("The profile store rejected the update").
		WithDetail("sub", subjectID)
}
