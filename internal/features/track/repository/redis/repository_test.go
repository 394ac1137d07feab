package redis

import (
	"context"
	"testing"
	"time"

	"current-backend/internal/features/track/models"
	"current-backend/internal/features/track/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (repository.TrackRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewTrackRepository(client, "tracks"), mr
}

func TestCreateAndGet(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	track := &models.Track{
		ID:         "trk_0a1b2c3d",
		Title:      "Wires",
		StreamPath: "tracks/Wires.flac",
		CreatedAt:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, track))

	got, err := repo.GetByID(ctx, track.ID)
	require.NoError(t, err)
	assert.Equal(t, track.Title, got.Title)
	assert.Equal(t, track.StreamPath, got.StreamPath)
	assert.True(t, track.CreatedAt.Equal(got.CreatedAt))

	assert.True(t, mr.Exists("tracks:track:trk_0a1b2c3d"))
	members, err := mr.ZMembers("tracks:all")
	require.NoError(t, err)
	assert.Equal(t, []string{"trk_0a1b2c3d"}, members)
}

func TestGetMissing(t *testing.T) {
	repo, _ := newRepo(t)

	_, err := repo.GetByID(context.Background(), "trk_ffffffff")
	assert.ErrorIs(t, err, repository.ErrTrackNotFound)
}

func TestListNewestFirst(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"trk_00000001", "trk_00000002", "trk_00000003"} {
		require.NoError(t, repo.Create(ctx, &models.Track{
			ID:         id,
			Title:      id,
			StreamPath: "tracks/" + id + ".mp3",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}))
	}

	tracks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tracks, 3)
	assert.Equal(t, "trk_00000003", tracks[0].ID)
	assert.Equal(t, "trk_00000002", tracks[1].ID)
	assert.Equal(t, "trk_00000001", tracks[2].ID)
}

func TestListSkipsDanglingIndexEntries(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Track{ID: "trk_00000001", StreamPath: "a.mp3", CreatedAt: time.Now()}))
	_, err := mr.ZAdd("tracks:all", 1, "trk_gone")
	require.NoError(t, err)

	tracks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "trk_00000001", tracks[0].ID)
}

func TestListEmpty(t *testing.T) {
	repo, _ := newRepo(t)

	tracks, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tracks)
	assert.Empty(t, tracks)
}
