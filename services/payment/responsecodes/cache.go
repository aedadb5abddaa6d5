package responsecodes

import (
    "context"
    "log"
    "strconv"
    "time"

    "github.com/go-redis/redis/v8"
)

const cacheKey = "authorizenet:approval_code"

// CachedSource keeps the approval code in Redis so the reference table is
// not re-fetched for every single charge. A cache miss or Redis failure
// falls through to the wrapped source.
type CachedSource struct {
    source Source
    client *redis.Client
    ttl    time.Duration
}

func NewCachedSource(source Source, client *redis.Client, ttl time.Duration) *CachedSource {
    return &CachedSource{
        source: source,
        client: client,
        ttl:    ttl,
    }
}

func (c *CachedSource) ApprovalCode(ctx context.Context) (int, error) {
    if cached, err := c.client.Get(ctx, cacheKey).Result(); err == nil {
        if code, convErr := strconv.Atoi(cached); convErr == nil {
            return code, nil
        }
    } else if err != redis.Nil {
        log.Printf("Warning: approval code cache read failed: %v", err)
    }

    code, err := c.source.ApprovalCode(ctx)
    if err != nil {
        return 0, err
    }

    if err := c.client.Set(ctx, cacheKey, strconv.Itoa(code), c.ttl).Err(); err != nil {
        log.Printf("Warning: approval code cache write failed: %v", err)
    }

    return code, nil
}
