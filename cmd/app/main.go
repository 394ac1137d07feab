package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	_ "current-backend/docs"
	"current-backend/internal/common/cache"
	"current-backend/internal/common/config"
	"current-backend/internal/common/logger"
	"current-backend/internal/features/auth/google"
	"current-backend/internal/features/auth/token"
	trackHandler "current-backend/internal/features/track/delivery/http"
	trackRepo "current-backend/internal/features/track/repository/redis"
	trackService "current-backend/internal/features/track/service"
	uploadHandler "current-backend/internal/features/upload/delivery/http"
	uploadRepo "current-backend/internal/features/upload/repository/redis"
	uploadService "current-backend/internal/features/upload/service"
	userHandler "current-backend/internal/features/user/delivery/http"
	"current-backend/internal/features/user/models"
	userRepo "current-backend/internal/features/user/repository/redis"
	userService "current-backend/internal/features/user/service"
	apphttp "current-backend/internal/http"
	"current-backend/internal/platform/redis"
	"current-backend/internal/platform/storage"
	"current-backend/internal/workers"
)

const serviceName = "current-backend"

// @title           Current API
// @version         1.0
// @description     Music streaming backend: Google sign-in, artist applications, track catalog and uploads.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session credential issued by POST /auth/google, sent as "Bearer <token>"

// @tag.name auth
// @tag.description Sign-in with Google

// @tag.name users
// @tag.description Current user and artist applications

// @tag.name admin
// @tag.description Review of pending artist applications

// @tag.name tracks
// @tag.description Track catalog and playback

// @tag.name uploads
// @tag.description Presigned uploads and ingest

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(serviceName, cfg.Debug)
	logger.Info().Bool("debug", cfg.Debug).Msg("Starting Current backend")

	if missing := cfg.Missing(); len(missing) > 0 {
		logger.Warn().Strs("missing", missing).Msg("Auth endpoints will fail until these settings are provided")
	}

	redisClient, err := redis.Open(ctx, cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()

	objectStore, err := storage.Open(storage.Options{
		Endpoint:  cfg.Storage.Endpoint,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create object storage client")
	}

	identity, err := google.NewJWKSVerifier(ctx, cfg.Google.ClientID, cfg.Google.JWKSURL)
	if err != nil {
		// Keep serving everything else; sign-in reports verification failure.
		logger.Error().Err(err).Msg("Google JWKS unavailable")
		jwksErr := err
		identity = google.NewVerifier(cfg.Google.ClientID, func(*jwt.Token) (interface{}, error) {
			return nil, jwksErr
		})
	}

	codec := token.NewCodec(cfg.JWT.Secret,
		token.WithIssuer(cfg.JWT.Issuer),
		token.WithAudience(cfg.JWT.Audience),
		token.WithTTL(cfg.JWT.TTL),
	)

	tracksKeys := redis.Keyspace(cfg.Tracks.Table)
	uploadStream := tracksKeys.Key("uploads", "events")

	cacheService := cache.NewCacheService(redisClient.Client)

	profiles := userRepo.NewProfileRepository(redisClient.Client, cfg.Users.Table, models.NewAdminAllowList(cfg.Users.AdminEmails))
	tracks := trackRepo.NewTrackRepository(redisClient.Client, cfg.Tracks.Table)
	events := uploadRepo.NewStreamPublisher(redisClient.Client, uploadStream)

	userSvc := userService.NewUserService(profiles, identity, codec)
	trackSvc := trackService.NewTrackService(tracks, cacheService, trackService.Config{
		AudioBaseURL: cfg.Tracks.AudioBaseURL,
		CacheKey:     tracksKeys.Key("cache", "list"),
		CacheTTL:     cfg.Tracks.CacheTTL,
	})
	uploadSvc := uploadService.NewUploadService(objectStore, events, uploadService.Config{
		Bucket: cfg.Storage.IngestBucket,
		URLTTL: cfg.Storage.PresignTTL,
	})

	logger.Info().Msg("Services initialized")

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := apphttp.NewRouter(cfg,
		func(ctx context.Context) error {
			if !redisClient.Healthy(ctx) {
				return errors.New("redis unavailable")
			}
			return nil
		},
		userHandler.NewUserHandler(userSvc, codec),
		trackHandler.NewTrackHandler(trackSvc),
		uploadHandler.NewUploadHandler(uploadSvc, codec),
	)

	var wg sync.WaitGroup
	if cfg.Storage.AudioBucket != "" {
		worker := workers.NewIngestWorker(redisClient.Client, objectStore, trackSvc, workers.IngestConfig{
			Stream:      uploadStream,
			AudioBucket: cfg.Storage.AudioBucket,
		})
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Start(ctx)
		}()
	} else {
		logger.Warn().Msg("AUDIO_BUCKET not set, ingest worker disabled")
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	wg.Wait()

	logger.Info().Msg("Server exited")
}
