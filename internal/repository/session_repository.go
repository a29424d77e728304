package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"careerpath_backend/internal/engine"
	"careerpath_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

// SessionRepository parks in-flight quiz sessions in Redis so the stateless
// HTTP layer can resume them across requests. One active session per user;
// starting a new quiz overwrites the old one.
type SessionRepository struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{Client: client, TTL: ttl}
}

func sessionKey(userID uint) string {
	return fmt.Sprintf("quiz:session:%d", userID)
}

func (r *SessionRepository) Save(ctx context.Context, userID uint, session *engine.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, sessionKey(userID), data, r.TTL).Err()
}

func (r *SessionRepository) Find(ctx context.Context, userID uint) (*engine.Session, error) {
	data, err := r.Client.Get(ctx, sessionKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, util.ErrNoActiveSession
	}
	if err != nil {
		return nil, err
	}
	var session engine.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, userID uint) error {
	return r.Client.Del(ctx, sessionKey(userID)).Err()
}
