package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	apperrors "current-backend/internal/common/errors"
	"current-backend/internal/features/auth/google"
	"current-backend/internal/features/auth/token"
	"current-backend/internal/features/user/models"
	"current-backend/internal/features/user/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Get(ctx context.Context, subjectID string) (*models.UserProfile, error) {
	args := m.Called(ctx, subjectID)
	p, _ := args.Get(0).(*models.UserProfile)
	return p, args.Error(1)
}

func (m *mockRepo) UpsertFromIdentity(ctx context.Context, claims models.IdentityClaims) (*models.UserProfile, error) {
	args := m.Called(ctx, claims)
	p, _ := args.Get(0).(*models.UserProfile)
	return p, args.Error(1)
}

func (m *mockRepo) BeginArtistApplication(ctx context.Context, subjectID string, app models.ArtistApplication) (*models.UserProfile, error) {
	args := m.Called(ctx, subjectID, app)
	p, _ := args.Get(0).(*models.UserProfile)
	return p, args.Error(1)
}

func (m *mockRepo) ListPendingApplications(ctx context.Context) ([]*models.UserProfile, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]*models.UserProfile)
	return p, args.Error(1)
}

func (m *mockRepo) ApproveArtist(ctx context.Context, subjectID string) (*models.UserProfile, error) {
	args := m.Called(ctx, subjectID)
	p, _ := args.Get(0).(*models.UserProfile)
	return p, args.Error(1)
}

func (m *mockRepo) RejectArtist(ctx context.Context, subjectID, reason string) (*models.UserProfile, error) {
	args := m.Called(ctx, subjectID, reason)
	p, _ := args.Get(0).(*models.UserProfile)
	return p, args.Error(1)
}

type stubVerifier struct {
	identity *google.Identity
	err      error
}

func (v *stubVerifier) VerifyAssertion(_ context.Context, _ string) (*google.Identity, error) {
	return v.identity, v.err
}

func newService(repo *mockRepo, v IdentityVerifier, secret string) UserService {
	return NewUserService(repo, v, token.NewCodec(secret))
}

func requireCode(t *testing.T, err error, code apperrors.ErrorCode) *apperrors.AppError {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func TestLogin(t *testing.T) {
	repo := &mockRepo{}
	v := &stubVerifier{identity: &google.Identity{SubjectID: "s1", Email: "fan@example.com", Name: "Fan"}}
	svc := newService(repo, v, "secret")

	repo.On("UpsertFromIdentity", mock.Anything, models.IdentityClaims{SubjectID: "s1", Email: "fan@example.com", Name: "Fan"}).
		Return(&models.UserProfile{SubjectID: "s1", Email: "fan@example.com", Role: models.RoleListener}, nil)

	resp, err := svc.Login(context.Background(), "assertion")
	require.NoError(t, err)
	assert.Equal(t, "s1", resp.User.SubjectID)

	claims, err := token.NewCodec("secret").Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "s1", claims.SubjectID())
	assert.Equal(t, "listener", claims.Role)
	repo.AssertExpectations(t)
}

func TestLogin_Failures(t *testing.T) {
	t.Run("missing credential", func(t *testing.T) {
		svc := newService(&mockRepo{}, &stubVerifier{}, "secret")
		_, err := svc.Login(context.Background(), "  ")
		requireCode(t, err, apperrors.ErrCodeBadRequest)
	})

	t.Run("verification failed", func(t *testing.T) {
		svc := newService(&mockRepo{}, &stubVerifier{err: google.ErrVerificationFailed}, "secret")
		_, err := svc.Login(context.Background(), "x")
		appErr := requireCode(t, err, apperrors.ErrCodeUnauthorized)
		assert.Equal(t, "Google token verification failed", appErr.Message)
	})

	t.Run("missing client id", func(t *testing.T) {
		svc := newService(&mockRepo{}, &stubVerifier{err: google.ErrMissingClientID}, "secret")
		_, err := svc.Login(context.Background(), "x")
		appErr := requireCode(t, err, apperrors.ErrCodeConfiguration)
		assert.Equal(t, "Server missing GOOGLE_CLIENT_ID", appErr.Message)
	})

	t.Run("missing secret", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("UpsertFromIdentity", mock.Anything, mock.Anything).
			Return(&models.UserProfile{SubjectID: "s1", Role: models.RoleListener}, nil)
		svc := newService(repo, &stubVerifier{identity: &google.Identity{SubjectID: "s1"}}, "")
		_, err := svc.Login(context.Background(), "x")
		requireCode(t, err, apperrors.ErrCodeConfiguration)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("UpsertFromIdentity", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))
		svc := newService(repo, &stubVerifier{identity: &google.Identity{SubjectID: "s1"}}, "secret")
		_, err := svc.Login(context.Background(), "x")
		requireCode(t, err, apperrors.ErrCodeDatabaseError)
	})
}

func TestGetProfile_Vanished(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Get", mock.Anything, "s1").Return(nil, repository.ErrProfileNotFound)

	_, err := newService(repo, &stubVerifier{}, "secret").GetProfile(context.Background(), "s1")
	appErr := requireCode(t, err, apperrors.ErrCodeUnauthorized)
	assert.Equal(t, "User not found", appErr.Message)
}

func TestApplyForArtist_EmptyNameNeverTouchesStore(t *testing.T) {
	repo := &mockRepo{}
	svc := newService(repo, &stubVerifier{}, "secret")

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.ApplyForArtist(context.Background(), "s1", &models.ArtistApplyRequest{DisplayName: name})
		appErr := requireCode(t, err, apperrors.ErrCodeBadRequest)
		assert.Equal(t, "displayName is required", appErr.Message)
	}
	_, err := svc.ApplyForArtist(context.Background(), "s1", nil)
	requireCode(t, err, apperrors.ErrCodeBadRequest)

	repo.AssertNotCalled(t, "BeginArtistApplication", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyForArtist_AlreadyArtistIsNoop(t *testing.T) {
	for _, role := range []models.Role{models.RoleArtist, models.RoleAdmin} {
		repo := &mockRepo{}
		profile := &models.UserProfile{SubjectID: "s1", Role: role, ArtistStatus: models.ArtistStatusApproved}
		repo.On("BeginArtistApplication", mock.Anything, "s1", mock.Anything).Return(profile, repository.ErrAlreadyArtist)

		resp, err := newService(repo, &stubVerifier{}, "secret").
			ApplyForArtist(context.Background(), "s1", &models.ArtistApplyRequest{DisplayName: "DJ"})
		require.NoError(t, err)
		assert.Equal(t, "Already an artist/admin.", resp.Message)
		assert.Empty(t, resp.Token)
		assert.Equal(t, models.ArtistStatusApproved, resp.User.ArtistStatus)
		repo.AssertExpectations(t)
	}
}

func TestApplyForArtist_Submits(t *testing.T) {
	repo := &mockRepo{}
	repo.On("BeginArtistApplication", mock.Anything, "s1", models.ArtistApplication{
		DisplayName: "DJ Test",
		Bio:         "bio",
		Genres:      "house",
	}).Return(&models.UserProfile{
		SubjectID:    "s1",
		Role:         models.RoleListener,
		ArtistStatus: models.ArtistStatusPending,
	}, nil)

	resp, err := newService(repo, &stubVerifier{}, "secret").ApplyForArtist(context.Background(), "s1", &models.ArtistApplyRequest{
		DisplayName: "  DJ Test ",
		Bio:         " bio",
		Genres:      "house ",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.ArtistStatusPending, resp.User.ArtistStatus)
	repo.AssertExpectations(t)
}

func TestApplyForArtist_LongFieldsAccepted(t *testing.T) {
	name := strings.Repeat("n", 101)
	bio := strings.Repeat("b", 2001)
	repo := &mockRepo{}
	repo.On("BeginArtistApplication", mock.Anything, "s1", models.ArtistApplication{
		DisplayName: name,
		Bio:         bio,
	}).Return(&models.UserProfile{SubjectID: "s1", Role: models.RoleListener, ArtistStatus: models.ArtistStatusPending}, nil)

	resp, err := newService(repo, &stubVerifier{}, "secret").
		ApplyForArtist(context.Background(), "s1", &models.ArtistApplyRequest{DisplayName: name, Bio: bio})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	repo.AssertExpectations(t)
}

func TestApplyForArtist_StoreFailure(t *testing.T) {
	repo := &mockRepo{}
	repo.On("BeginArtistApplication", mock.Anything, "s1", mock.Anything).Return(nil, errors.New("boom"))

	_, err := newService(repo, &stubVerifier{}, "secret").
		ApplyForArtist(context.Background(), "s1", &models.ArtistApplyRequest{DisplayName: "DJ"})
	requireCode(t, err, apperrors.ErrCodeDatabaseError)
}

func TestApplyForArtist_ProfileVanished(t *testing.T) {
	repo := &mockRepo{}
	repo.On("BeginArtistApplication", mock.Anything, "s1", mock.Anything).Return(nil, repository.ErrProfileNotFound)

	_, err := newService(repo, &stubVerifier{}, "secret").
		ApplyForArtist(context.Background(), "s1", &models.ArtistApplyRequest{DisplayName: "DJ"})
	appErr := requireCode(t, err, apperrors.ErrCodeUnauthorized)
	assert.Equal(t, "User not found", appErr.Message)
}

func TestListPendingApplications_NeverNil(t *testing.T) {
	repo := &mockRepo{}
	repo.On("ListPendingApplications", mock.Anything).Return([]*models.UserProfile{}, nil)

	items, err := newService(repo, &stubVerifier{}, "secret").ListPendingApplications(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestApproveArtist(t *testing.T) {
	t.Run("missing sub", func(t *testing.T) {
		_, err := newService(&mockRepo{}, &stubVerifier{}, "secret").ApproveArtist(context.Background(), " ")
		appErr := requireCode(t, err, apperrors.ErrCodeBadRequest)
		assert.Equal(t, "Missing user sub", appErr.Message)
	})

	t.Run("unknown profile", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("ApproveArtist", mock.Anything, "ghost").Return(nil, repository.ErrProfileNotFound)
		_, err := newService(repo, &stubVerifier{}, "secret").ApproveArtist(context.Background(), "ghost")
		requireCode(t, err, apperrors.ErrCodeProfileNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("ApproveArtist", mock.Anything, "s1").Return(nil, errors.New("dial tcp: refused"))
		_, err := newService(repo, &stubVerifier{}, "secret").ApproveArtist(context.Background(), "s1")
		appErr := requireCode(t, err, apperrors.ErrCodeInternal)
		assert.Equal(t, "Approve failed", appErr.Message)
		assert.NotContains(t, appErr.Detail, "refused")
	})
}

func TestRejectArtist(t *testing.T) {
	repo := &mockRepo{}
	repo.On("RejectArtist", mock.Anything, "s1", "").Return(&models.UserProfile{
		SubjectID:             "s1",
		ArtistStatus:          models.ArtistStatusRejected,
		ArtistRejectionReason: models.DefaultRejectionReason,
	}, nil)

	user, err := newService(repo, &stubVerifier{}, "secret").RejectArtist(context.Background(), "s1", "   ")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultRejectionReason, user.ArtistRejectionReason)

	long := strings.Repeat("x", 501)
	verbose := &mockRepo{}
	verbose.On("RejectArtist", mock.Anything, "s1", long).Return(&models.UserProfile{
		SubjectID:             "s1",
		ArtistStatus:          models.ArtistStatusRejected,
		ArtistRejectionReason: long,
	}, nil)
	user, err = newService(verbose, &stubVerifier{}, "secret").RejectArtist(context.Background(), "s1", long)
	require.NoError(t, err)
	assert.Equal(t, long, user.ArtistRejectionReason)

	failing := &mockRepo{}
	failing.On("RejectArtist", mock.Anything, "s1", "no").Return(nil, errors.New("boom"))
	_, err = newService(failing, &stubVerifier{}, "secret").RejectArtist(context.Background(), "s1", "no")
	appErr := requireCode(t, err, apperrors.ErrCodeInternal)
	assert.Equal(t, "Reject failed", appErr.Message)
}
