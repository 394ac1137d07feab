package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"current-backend/internal/common/cache"
	"current-backend/internal/common/config"
	"current-backend/internal/features/track/models"
	trackredis "current-backend/internal/features/track/repository/redis"
	"current-backend/internal/features/track/service"
	apphttp "current-backend/internal/http"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*gin.Engine, service.TrackService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svc := service.NewTrackService(trackredis.NewTrackRepository(client, "tracks"), cache.NewCacheService(client), service.Config{
		AudioBaseURL: "https://cdn.example.com",
		CacheKey:     "tracks:cache:list",
	})
	return apphttp.NewRouter(&config.Config{}, nil, NewTrackHandler(svc)), svc
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestListTracks(t *testing.T) {
	router, svc := setup(t)

	w := get(router, "/tracks")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"tracks":[]}`, w.Body.String())

	track, err := svc.RegisterTrack(context.Background(), models.NewTrackInput{Title: "Wires", StreamPath: "tracks/Wires.flac"})
	require.NoError(t, err)

	w = get(router, "/tracks")
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.TracksResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Tracks, 1)
	assert.Equal(t, track.ID, resp.Tracks[0].ID)
	assert.Equal(t, "tracks/Wires.flac", resp.Tracks[0].StreamPath)
}

func TestStreamURL(t *testing.T) {
	router, svc := setup(t)

	track, err := svc.RegisterTrack(context.Background(), models.NewTrackInput{Title: "Wires", StreamPath: "tracks/Wires.flac"})
	require.NoError(t, err)

	w := get(router, "/tracks/"+track.ID+"/stream")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"stream_url":"https://cdn.example.com/tracks/Wires.flac"}`, w.Body.String())

	w = get(router, "/tracks/trk_nope/stream")
	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Track 'trk_nope' not found", body["error"])
}
