package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"gopherfeed/internal/model"
)

const feedKey = "posts:feed"

// FeedCache keeps the rendered public feed in Redis for a short TTL and
// is dropped whenever a post is created or deleted.
type FeedCache struct {
	client  *redisv9.Client
	feedTTL time.Duration
}

func NewFeedCache(client *redisv9.Client, feedTTL time.Duration) *FeedCache {
	if feedTTL <= 0 {
		feedTTL = 30 * time.Second
	}
	return &FeedCache{
		client:  client,
		feedTTL: feedTTL,
	}
}

func (c *FeedCache) GetFeed(ctx context.Context) ([]model.Post, bool, error) {
	raw, err := c.client.Get(ctx, feedKey).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get feed failed: %w", err)
	}

	var posts []model.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached feed failed: %w", err)
	}
	return posts, true, nil
}

func (c *FeedCache) SetFeed(ctx context.Context, posts []model.Post) error {
	payload, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("marshal feed cache failed: %w", err)
	}
	if err := c.client.Set(ctx, feedKey, payload, c.feedTTL).Err(); err != nil {
		return fmt.Errorf("redis set feed failed: %w", err)
	}
	return nil
}

func (c *FeedCache) DeleteFeed(ctx context.Context) error {
	if err := c.client.Del(ctx, feedKey).Err(); err != nil {
		return fmt.Errorf("redis delete feed failed: %w", err)
	}
	return nil
}
