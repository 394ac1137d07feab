package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"current-backend/internal/features/user/models"
	"current-backend/internal/features/user/repository"
	platformredis "current-backend/internal/platform/redis"

	"github.com/redis/go-redis/v9"
)

const (
	// pendingTimeLayout has a fixed width so index members sort by time.
	pendingTimeLayout = "2006-01-02T15:04:05.000000000Z"
	maxTxAttempts     = 8
)

type profileRepository struct {
	client *redis.Client
	keys   platformredis.Keyspace
	admins models.AdminAllowList
	now    func() time.Time
}

type Option func(*profileRepository)

// WithClock overrides the time source used for profile timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *profileRepository) { r.now = now }
}

func NewProfileRepository(client *redis.Client, table string, admins models.AdminAllowList, opts ...Option) repository.ProfileRepository {
	r := &profileRepository{
		client: client,
		keys:   platformredis.Keyspace(table),
		admins: admins,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *profileRepository) profileKey(subjectID string) string {
	return r.keys.Key("user", subjectID)
}

func (r *profileRepository) pendingKey() string {
	return r.keys.Key("artist", "pending")
}

func (r *profileRepository) Get(ctx context.Context, subjectID string) (*models.UserProfile, error) {
	return r.load(ctx, r.client, subjectID)
}

func (r *profileRepository) UpsertFromIdentity(ctx context.Context, claims models.IdentityClaims) (*models.UserProfile, error) {
	if claims.SubjectID == "" {
		return nil, fmt.Errorf("upsert profile: empty subject id")
	}

	return r.update(ctx, claims.SubjectID, func(current *models.UserProfile, now time.Time) (*models.UserProfile, error) {
		next := &models.UserProfile{}
		if current != nil {
			*next = *current
		} else {
			next.SubjectID = claims.SubjectID
			next.CreatedAt = now
		}

		next.Email = claims.Email
		next.DisplayName = claims.Name
		next.PictureURL = claims.PictureURL
		next.Role = r.admins.ResolveRole(next.Role, claims.Email)
		if next.CreatedAt.IsZero() {
			next.CreatedAt = now
		}
		next.UpdatedAt = now
		next.LastLoginAt = now
		return next, nil
	})
}

func (r *profileRepository) BeginArtistApplication(ctx context.Context, subjectID string, app models.ArtistApplication) (*models.UserProfile, error) {
	return r.update(ctx, subjectID, func(current *models.UserProfile, now time.Time) (*models.UserProfile, error) {
		if current == nil {
			return nil, repository.ErrProfileNotFound
		}
		if current.Role.CanPublish() {
			return current, repository.ErrAlreadyArtist
		}

		next := *current
		app.SubmittedAt = now
		next.ArtistStatus = models.ArtistStatusPending
		next.ArtistApplication = &app
		next.PendingKey = now.UTC().Format(pendingTimeLayout) + "#" + subjectID
		next.UpdatedAt = now
		return &next, nil
	})
}

func (r *profileRepository) ApproveArtist(ctx context.Context, subjectID string) (*models.UserProfile, error) {
	return r.update(ctx, subjectID, func(current *models.UserProfile, now time.Time) (*models.UserProfile, error) {
		if current == nil {
			return nil, repository.ErrProfileNotFound
		}

		next := *current
		next.Role = models.RoleArtist
		next.ArtistStatus = models.ArtistStatusApproved
		next.PendingKey = ""
		next.UpdatedAt = now
		return &next, nil
	})
}

func (r *profileRepository) RejectArtist(ctx context.Context, subjectID, reason string) (*models.UserProfile, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = models.DefaultRejectionReason
	}

	return r.update(ctx, subjectID, func(current *models.UserProfile, now time.Time) (*models.UserProfile, error) {
		if current == nil {
			return nil, repository.ErrProfileNotFound
		}

		next := *current
		next.ArtistStatus = models.ArtistStatusRejected
		next.ArtistRejectionReason = reason
		next.PendingKey = ""
		next.UpdatedAt = now
		return &next, nil
	})
}

// ListPendingApplications reads the index oldest first and loads the matching
// profiles. Members whose profile is no longer pending are skipped.
func (r *profileRepository) ListPendingApplications(ctx context.Context) ([]*models.UserProfile, error) {
	members, err := r.client.ZRangeByLex(ctx, r.pendingKey(), &redis.ZRangeBy{Min: "-", Max: "+"}).Result()
	if err != nil {
		return nil, fmt.Errorf("read pending index: %w", err)
	}
	if len(members) == 0 {
		return []*models.UserProfile{}, nil
	}

	keys := make([]string, 0, len(members))
	for _, m := range members {
		keys = append(keys, r.profileKey(subjectFromMember(m)))
	}

	raw, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load pending profiles: %w", err)
	}

	profiles := make([]*models.UserProfile, 0, len(raw))
	for i, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var p models.UserProfile
		if err := json.Unmarshal([]byte(s), &p); err != nil {
			return nil, fmt.Errorf("decode profile %s: %w", keys[i], err)
		}
		if p.IsPending() && p.PendingKey == members[i] {
			profiles = append(profiles, &p)
		}
	}

	return profiles, nil
}

// getter is satisfied by both *redis.Client and *redis.Tx.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// mutation derives the next profile from the stored one. Returning a profile
// together with an error skips the write and hands both back to the caller.
type mutation func(current *models.UserProfile, now time.Time) (*models.UserProfile, error)

// update runs mutate inside WATCH/MULTI/EXEC on the profile key. The profile
// write and the pending index change derived from the PendingKey diff are
// queued in the same transaction. A concurrent write to the profile aborts
// EXEC and the mutation is re-evaluated against the fresh record.
func (r *profileRepository) update(ctx context.Context, subjectID string, mutate mutation) (*models.UserProfile, error) {
	key := r.profileKey(subjectID)
	var result *models.UserProfile

	txf := func(tx *redis.Tx) error {
		result = nil
		current, err := r.load(ctx, tx, subjectID)
		if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
			return err
		}

		next, err := mutate(current, r.now().UTC())
		if err != nil {
			result = next
			return err
		}

		data, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("encode profile: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			var prev string
			if current != nil {
				prev = current.PendingKey
			}
			if prev != "" && prev != next.PendingKey {
				pipe.ZRem(ctx, r.pendingKey(), prev)
			}
			if next.PendingKey != "" && next.PendingKey != prev {
				pipe.ZAdd(ctx, r.pendingKey(), redis.Z{Score: 0, Member: next.PendingKey})
			}
			return nil
		})
		if err != nil {
			return err
		}

		result = next
		return nil
	}

	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return result, err
	}

	return nil, repository.ErrConflict
}

func (r *profileRepository) load(ctx context.Context, c getter, subjectID string) (*models.UserProfile, error) {
	data, err := c.Get(ctx, r.profileKey(subjectID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var p models.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

func subjectFromMember(member string) string {
	if i := strings.IndexByte(member, '#'); i >= 0 {
		return member[i+1:]
	}
	return member
}
