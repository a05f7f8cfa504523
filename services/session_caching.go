package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"main/model"

	"github.com/redis/go-redis/v9"
)

type SessionCache struct {
	client    *redis.Client
	cacheLock sync.RWMutex
}

type SessionCacheEntry struct {
	Sessions  []*model.Session `json:"sessions"`
	Version   int64            `json:"version"`
	UpdatedAt time.Time        `json:"updated_at"`
}

var GlobalSessionCache *SessionCache

func NewSessionCache(redisURL string) (*SessionCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &SessionCache{client: client}, nil
}

// SetSession caches an individual session with a TTL matching its expiry.
func (sc *SessionCache) SetSession(session *model.Session) error {
	if session == nil {
		return fmt.Errorf("cannot cache nil session")
	}

	sc.cacheLock.Lock()
	defer sc.cacheLock.Unlock()

	ctx := context.Background()
	key := fmt.Sprintf("session:%s", session.SessionID)

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %v", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session has already expired")
	}

	if err := sc.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache session: %v", err)
	}
	return nil
}

func (sc *SessionCache) GetSession(sessionID string) (*model.Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("sessionID cannot be empty")
	}

	sc.cacheLock.RLock()
	defer sc.cacheLock.RUnlock()

	ctx := context.Background()
	key := fmt.Sprintf("session:%s", sessionID)

	data, err := sc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session from cache: %v", err)
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %v", err)
	}

	if time.Now().After(session.ExpiresAt) {
		sc.client.Del(ctx, key)
		return nil, nil
	}

	return &session, nil
}

// CacheUserSessions stores the active session list for a user, cached for
// five minutes and considered stale after thirty seconds.
func (sc *SessionCache) CacheUserSessions(userID string, sessions []*model.Session) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}

	sc.cacheLock.Lock()
	defer sc.cacheLock.Unlock()

	ctx := context.Background()
	key := fmt.Sprintf("user_sessions:%s", userID)

	entry := SessionCacheEntry{
		Sessions:  sessions,
		Version:   time.Now().UnixNano(),
		UpdatedAt: time.Now(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal sessions: %v", err)
	}

	if err := sc.client.Set(ctx, key, data, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to cache user sessions: %v", err)
	}
	return nil
}

func (sc *SessionCache) GetUserSessions(userID string) ([]*model.Session, bool, error) {
	if userID == "" {
		return nil, false, fmt.Errorf("userID cannot be empty")
	}

	sc.cacheLock.RLock()
	defer sc.cacheLock.RUnlock()

	ctx := context.Background()
	key := fmt.Sprintf("user_sessions:%s", userID)

	data, err := sc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil // cache miss
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get user sessions from cache: %v", err)
	}

	var entry SessionCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal sessions: %v", err)
	}

	isStale := time.Since(entry.UpdatedAt) > 30*time.Second
	return entry.Sessions, isStale, nil
}

func (sc *SessionCache) DeleteSession(sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID cannot be empty")
	}

	sc.cacheLock.Lock()
	defer sc.cacheLock.Unlock()

	ctx := context.Background()
	key := fmt.Sprintf("session:%s", sessionID)

	if err := sc.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete session from cache: %v", err)
	}
	return nil
}

// IncrementSessionVersion bumps the version counter, invalidating the cached
// session list on the next read.
func (sc *SessionCache) IncrementSessionVersion(userID string) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}

	ctx := context.Background()
	key := fmt.Sprintf("user_sessions_version:%s", userID)

	if err := sc.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to increment session version: %v", err)
	}
	return nil
}

// CleanupExpiredSessions scans cached sessions and drops any past expiry.
func (sc *SessionCache) CleanupExpiredSessions() error {
	sc.cacheLock.Lock()
	defer sc.cacheLock.Unlock()

	ctx := context.Background()

	var cursor uint64
	for {
		keys, newCursor, err := sc.client.Scan(ctx, cursor, "session:*", 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan keys: %v", err)
		}

		for _, key := range keys {
			data, err := sc.client.Get(ctx, key).Bytes()
			if err != nil {
				continue
			}

			var session model.Session
			if err := json.Unmarshal(data, &session); err != nil {
				continue
			}

			if time.Now().After(session.ExpiresAt) {
				sc.client.Del(ctx, key)
			}
		}

		cursor = newCursor
		if cursor == 0 {
			break
		}
	}

	return nil
}

// StartCleanupTask runs CleanupExpiredSessions every 15 minutes.
func (sc *SessionCache) StartCleanupTask() {
	go func() {
		ticker := time.NewTicker(15 * time.Minute)
		for range ticker.C {
			if err := sc.CleanupExpiredSessions(); err != nil {
				log.Printf("Error cleaning up expired sessions: %v", err)
			}
		}
	}()
}

func (sc *SessionCache) IsConnected() bool {
	if sc == nil || sc.client == nil {
		return false
	}
	ctx := context.Background()
	return sc.client.Ping(ctx).Err() == nil
}

func (sc *SessionCache) Close() error {
	return sc.client.Close()
}
