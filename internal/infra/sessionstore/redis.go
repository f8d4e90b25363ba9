package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"rooftop-wizard/internal/domain/wizard"
	"rooftop-wizard/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "wizard:session:"
	guardKeyPrefix   = "wizard:submit:"
)

// RedisSessionStore keeps wizard sessions in Redis for the lifetime of one
// wizard run. The TTL is the backstop for abandoned sessions; completion and
// dismissal delete eagerly.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisSessionStore {
	return &RedisSessionStore{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *wizard.Session) error {
	payload, err := json.Marshal(sess.Snapshot())
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindStoreFailure, "failed to encode wizard session", err)
	}

	if err := s.client.Set(ctx, sessionKey(sess.ID()), payload, s.ttl).Err(); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindStoreFailure, "failed to store wizard session", err)
	}
	return nil
}

func (s *RedisSessionStore) Find(ctx context.Context, id uuid.UUID) (*wizard.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, infra.WrapStoreErr(s.logger, infra.KindNotFound, "wizard session not found", err)
	}
	if err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindStoreFailure, "failed to load wizard session", err)
	}

	var snapshot wizard.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindStoreFailure, "failed to decode wizard session", err)
	}

	sess, err := wizard.ReconstructSession(snapshot)
	if err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindStoreFailure, "stored wizard session is invalid", err)
	}
	return sess, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindStoreFailure, "failed to delete wizard session", err)
	}
	return nil
}

// AcquireSubmitGuard takes the per-session submission latch. SETNX makes the
// payment action at-most-once even across concurrent requests; the TTL frees
// the latch if the process dies mid-submission.
func (s *RedisSessionStore) AcquireSubmitGuard(ctx context.Context, id uuid.UUID, ttl time.Duration) (bool, error) {
	acquired, err := s.client.SetNX(ctx, guardKey(id), "1", ttl).Result()
	if err != nil {
		return false, infra.WrapStoreErr(s.logger, infra.KindStoreFailure, "failed to acquire submit guard", err)
	}
	return acquired, nil
}

func (s *RedisSessionStore) ReleaseSubmitGuard(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, guardKey(id)).Err(); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindStoreFailure, "failed to release submit guard", err)
	}
	return nil
}

func sessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}

func guardKey(id uuid.UUID) string {
	return guardKeyPrefix + id.String()
}
