package dms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/powerops/dmgen"
)

// cachedResponse is the msgpack envelope of a cached read.
type cachedResponse struct {
	Body     []byte `msgpack:"body"`
	StoredAt int64  `msgpack:"stored_at"`
}

// read posts a read-only request, answering from the cache when one is
// configured and holds the response.
func (c *Client) read(ctx context.Context, op, path string, body, out any) error {
	cache := c.config.Cache
	if cache == nil {
		return c.post(ctx, path, body, out)
	}
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("dms: marshal %s body: %w", path, err)
	}
	key := dmgen.CacheKey{BaseURL: c.config.BaseURL, Project: c.config.Project, Operation: op, Body: data}.String()
	if raw, err := cache.Get(ctx, key); err != nil {
		c.logger.WarnContext(ctx, "cache get failed", "key", key, "error", err)
	} else if raw != nil {
		var cr cachedResponse
		if err := msgpack.Unmarshal(raw, &cr); err == nil {
			if err := json.Unmarshal(cr.Body, out); err == nil {
				c.stats.CacheHits.Add(1)
				return nil
			}
		}
		c.logger.DebugContext(ctx, "discarding undecodable cache entry", "key", key)
	}

	resp, err := c.do(ctx, http.MethodPost, path, data)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp, out); err != nil {
		return fmt.Errorf("dms: decode %s response: %w", path, err)
	}
	enc, err := msgpack.Marshal(&cachedResponse{Body: resp, StoredAt: time.Now().UnixMilli()})
	if err == nil {
		err = cache.Set(ctx, key, enc, c.config.CacheTTL)
	}
	if err != nil {
		c.logger.WarnContext(ctx, "cache set failed", "key", key, "error", err)
	}
	return nil
}

// invalidate drops every cached read of the project. It runs even when ctx
// is done, since the platform may have committed the write.
func (c *Client) invalidate(ctx context.Context) {
	if c.config.Cache == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	prefix := dmgen.CacheKey{BaseURL: c.config.BaseURL, Project: c.config.Project}.Prefix()
	if err := c.config.Cache.DeletePrefix(ctx, prefix); err != nil {
		c.logger.WarnContext(ctx, "cache invalidation failed", "prefix", prefix, "error", err)
	}
}
