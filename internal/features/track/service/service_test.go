package service

import (
	"context"
	"testing"
	"time"

	"current-backend/internal/common/cache"
	apperrors "current-backend/internal/common/errors"
	"current-backend/internal/features/track/models"
	trackredis "current-backend/internal/features/track/repository/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, baseURL string) (TrackService, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svc := NewTrackService(trackredis.NewTrackRepository(client, "tracks"), cache.NewCacheService(client), Config{
		AudioBaseURL: baseURL,
		CacheKey:     "tracks:cache:list",
		CacheTTL:     time.Minute,
	})
	return svc, client
}

func TestJoinURL(t *testing.T) {
	cases := []struct{ base, path, want string }{
		{"https://cdn.example.com", "tracks/a.mp3", "https://cdn.example.com/tracks/a.mp3"},
		{"https://cdn.example.com/", "/tracks/a.mp3", "https://cdn.example.com/tracks/a.mp3"},
		{"https://cdn.example.com//", "//tracks/a.mp3", "https://cdn.example.com/tracks/a.mp3"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, JoinURL(tc.base, tc.path))
	}
}

func TestNewTrackID(t *testing.T) {
	id := NewTrackID()
	assert.Regexp(t, `^trk_[0-9a-f]{8}$`, id)
	assert.NotEqual(t, id, NewTrackID())
}

func TestRegisterAndList(t *testing.T) {
	svc, _ := newService(t, "https://cdn.example.com")
	ctx := context.Background()

	empty, err := svc.ListTracks(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	first, err := svc.RegisterTrack(ctx, models.NewTrackInput{Title: "One", StreamPath: "tracks/one.mp3"})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := svc.RegisterTrack(ctx, models.NewTrackInput{Title: "Two", StreamPath: "tracks/two.flac"})
	require.NoError(t, err)

	tracks, err := svc.ListTracks(ctx)
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, second.ID, tracks[0].ID)
	assert.Equal(t, first.ID, tracks[1].ID)
}

func TestListIsCachedUntilIngest(t *testing.T) {
	svc, client := newService(t, "https://cdn.example.com")
	ctx := context.Background()

	_, err := svc.RegisterTrack(ctx, models.NewTrackInput{Title: "One", StreamPath: "tracks/one.mp3"})
	require.NoError(t, err)

	tracks, err := svc.ListTracks(ctx)
	require.NoError(t, err)
	require.Len(t, tracks, 1)

	exists, err := client.Exists(ctx, "tracks:cache:list").Result()
	require.NoError(t, err)
	assert.EqualValues(t, 1, exists)

	_, err = svc.RegisterTrack(ctx, models.NewTrackInput{Title: "Two", StreamPath: "tracks/two.mp3"})
	require.NoError(t, err)

	tracks, err = svc.ListTracks(ctx)
	require.NoError(t, err)
	assert.Len(t, tracks, 2)
}

func TestStreamURL(t *testing.T) {
	svc, client := newService(t, "https://cdn.example.com/")
	ctx := context.Background()

	track, err := svc.RegisterTrack(ctx, models.NewTrackInput{Title: "Wires", StreamPath: "/tracks/Wires.flac"})
	require.NoError(t, err)

	url, err := svc.StreamURL(ctx, track.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/tracks/Wires.flac", url)

	_, err = svc.StreamURL(ctx, "trk_missing")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeTrackNotFound, appErr.Code)
	assert.Equal(t, "Track 'trk_missing' not found", appErr.Message)

	require.NoError(t, client.Set(ctx, "tracks:track:trk_broken", `{"track_id":"trk_broken","title":"x"}`, 0).Err())
	_, err = svc.StreamURL(ctx, "trk_broken")
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeInternal, appErr.Code)
}

func TestStreamURLWithoutBase(t *testing.T) {
	svc, _ := newService(t, "")
	ctx := context.Background()

	track, err := svc.RegisterTrack(ctx, models.NewTrackInput{Title: "Wires", StreamPath: "tracks/Wires.flac"})
	require.NoError(t, err)

	_, err = svc.StreamURL(ctx, track.ID)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeConfiguration, appErr.Code)
}
