package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/akanksha509/AI-Tutor-sub001/internal/logger"
	"github.com/akanksha509/AI-Tutor-sub001/internal/types"
)

// ContextCache keeps the latest ChunkContext per lesson so a restarted
// validator can resume a streaming lesson without replaying accepted chunks.
// Postgres stays the source of truth; this is a read-through shortcut.
type ContextCache interface {
	Put(ctx context.Context, lessonID uuid.UUID, chunkContext types.ChunkContext) error
	Get(ctx context.Context, lessonID uuid.UUID) (*types.ChunkContext, error)
	Drop(ctx context.Context, lessonID uuid.UUID) error
	Close() error
}

type contextCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewContextCache(log *logger.Logger) (ContextCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &contextCache{
		log: log.With("service", "ContextCache"),
		rdb: rdb,
		ttl: 24 * time.Hour,
	}, nil
}

func contextKey(lessonID uuid.UUID) string {
	return "lesson:" + lessonID.String() + ":chunk_context"
}

func (c *contextCache) Put(ctx context.Context, lessonID uuid.UUID, chunkContext types.ChunkContext) error {
	payload, err := json.Marshal(chunkContext)
	if err != nil {
		return fmt.Errorf("marshal chunk context: %w", err)
	}
	if err := c.rdb.Set(ctx, contextKey(lessonID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache chunk context: %w", err)
	}
	return nil
}

func (c *contextCache) Get(ctx context.Context, lessonID uuid.UUID) (*types.ChunkContext, error) {
	payload, err := c.rdb.Get(ctx, contextKey(lessonID)).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch chunk context: %w", err)
	}
	var chunkContext types.ChunkContext
	if err := json.Unmarshal(payload, &chunkContext); err != nil {
		c.log.Warn("Dropping undecodable cached context", "lesson_id", lessonID, "error", err)
		_ = c.rdb.Del(ctx, contextKey(lessonID)).Err()
		return nil, nil
	}
	return &chunkContext, nil
}

func (c *contextCache) Drop(ctx context.Context, lessonID uuid.UUID) error {
	return c.rdb.Del(ctx, contextKey(lessonID)).Err()
}

func (c *contextCache) Close() error {
	return c.rdb.Close()
}
