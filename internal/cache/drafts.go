// Package cache mirrors in-flight CV documents to Redis. The mirror is a
// best-effort copy of the editing session: writes happen as a store observer
// on every state change, reads happen when an editor session resumes before
// the document was saved to Postgres. Loss of the mirror is never fatal.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mlefevre/cv-builder/internal/cv"
)

// DraftTTL bounds how long an abandoned draft outlives its session.
const DraftTTL = 24 * time.Hour

// ShareTTL bounds the public share-read cache.
const ShareTTL = 5 * time.Minute

// redisClient is the slice of the go-redis API the cache uses. Connect
// supplies a real *redis.Client; tests substitute a fake.
type redisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

// Cache wraps the Redis client.
type Cache struct {
	rdb redisClient
	log zerolog.Logger
}

// Connect opens a Redis client from a URL and verifies the connection.
func Connect(ctx context.Context, redisURL string, log zerolog.Logger) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &Cache{rdb: rdb, log: log}, nil
}

// Close releases the client.
func (c *Cache) Close() error {
	return c.rdb.Close()
}

func draftKey(ownerID, docID string) string {
	return "draft:" + ownerID + ":" + docID
}

func shareKey(shareID string) string {
	return "share:" + shareID
}

// SaveDraft writes the current document snapshot. Errors are logged, not
// returned: the mirror must never break an edit.
func (c *Cache) SaveDraft(ctx context.Context, doc cv.Document) {
	payload, err := json.Marshal(doc)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to serialize draft")
		return
	}
	key := draftKey(doc.OwnerID.String(), doc.ID.String())
	if err := c.rdb.Set(ctx, key, payload, DraftTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("failed to mirror draft")
	}
}

// LoadDraft reads a mirrored document, or nil when none exists.
func (c *Cache) LoadDraft(ctx context.Context, ownerID, docID string) (*cv.Document, error) {
	payload, err := c.rdb.Get(ctx, draftKey(ownerID, docID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	var doc cv.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	doc.Data.Normalize()
	return &doc, nil
}

// DropDraft deletes a mirrored document, typically after a successful save.
func (c *Cache) DropDraft(ctx context.Context, ownerID, docID string) {
	if err := c.rdb.Del(ctx, draftKey(ownerID, docID)).Err(); err != nil {
		c.log.Warn().Err(err).Msg("failed to drop draft")
	}
}

// DraftObserver adapts the cache into a store observer. The returned
// function mirrors every state change under the session owner's key.
func (c *Cache) DraftObserver(ctx context.Context) cv.Observer {
	return func(doc cv.Document) {
		c.SaveDraft(ctx, doc)
	}
}

// GetSharedPage returns a cached public share page, or "" on miss.
func (c *Cache) GetSharedPage(ctx context.Context, shareID string) string {
	page, err := c.rdb.Get(ctx, shareKey(shareID)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("share cache read failed")
		}
		return ""
	}
	return page
}

// PutSharedPage caches a rendered public share page.
func (c *Cache) PutSharedPage(ctx context.Context, shareID, page string) {
	if err := c.rdb.Set(ctx, shareKey(shareID), page, ShareTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("share cache write failed")
	}
}

// DropSharedPage invalidates a cached share page after revocation or update.
func (c *Cache) DropSharedPage(ctx context.Context, shareID string) {
	if err := c.rdb.Del(ctx, shareKey(shareID)).Err(); err != nil {
		c.log.Warn().Err(err).Msg("share cache invalidation failed")
	}
}
