package dms

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
)

// RequestStats holds request statistics of a client.
type RequestStats struct {
	// TotalRequests is the number of requests sent, retries included.
	TotalRequests atomic.Int64
	// Retries is the number of retried attempts.
	Retries atomic.Int64
	// CacheHits is the number of reads answered from the response cache.
	CacheHits atomic.Int64
	// TotalDuration is the total time spent on requests.
	TotalDuration atomic.Int64 // nanoseconds
	// SlowRequests is the count of requests exceeding the slow threshold.
	SlowRequests atomic.Int64
	// Errors is the count of failed requests.
	Errors atomic.Int64
}

// Stats returns a snapshot of the current statistics.
func (s *RequestStats) Stats() StatsSnapshot {
	return StatsSnapshot{
		TotalRequests: s.TotalRequests.Load(),
		Retries:       s.Retries.Load(),
		CacheHits:     s.CacheHits.Load(),
		TotalDuration: time.Duration(s.TotalDuration.Load()),
		SlowRequests:  s.SlowRequests.Load(),
		Errors:        s.Errors.Load(),
	}
}

// Reset resets all statistics to zero.
func (s *RequestStats) Reset() {
	s.TotalRequests.Store(0)
	s.Retries.Store(0)
	s.CacheHits.Store(0)
	s.TotalDuration.Store(0)
	s.SlowRequests.Store(0)
	s.Errors.Store(0)
}

// StatsSnapshot is a point-in-time snapshot of request statistics.
type StatsSnapshot struct {
	TotalRequests int64
	Retries       int64
	CacheHits     int64
	TotalDuration time.Duration
	SlowRequests  int64
	Errors        int64
}

// AvgRequestDuration returns the average request duration.
func (s StatsSnapshot) AvgRequestDuration() time.Duration {
	if s.TotalRequests == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(s.TotalRequests)
}

// String returns a human-readable summary of the statistics.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf(
		"requests=%d retries=%d cache_hits=%d duration=%s avg=%s slow=%d errors=%d",
		s.TotalRequests, s.Retries, s.CacheHits, s.TotalDuration, s.AvgRequestDuration(),
		s.SlowRequests, s.Errors,
	)
}

// SlowRequestHook is a function called when a slow request is detected.
type SlowRequestHook func(ctx context.Context, method, path string, duration time.Duration)

// logSlowRequest logs slow requests to the given logger.
func logSlowRequest(logger *slog.Logger) SlowRequestHook {
	return func(ctx context.Context, method, path string, duration time.Duration) {
		logger.WarnContext(ctx, "slow request detected", "method", method, "path", path, "duration", duration)
	}
}

func (c *Client) record(ctx context.Context, method, path string, start time.Time, err error) {
	duration := time.Since(start)
	c.stats.TotalRequests.Add(1)
	c.stats.TotalDuration.Add(int64(duration))
	if err != nil {
		c.stats.Errors.Add(1)
	}
	if c.config.SlowThreshold > 0 && duration > c.config.SlowThreshold {
		c.stats.SlowRequests.Add(1)
		if c.config.SlowHook != nil {
			c.config.SlowHook(ctx, method, path, duration)
		}
	}
}
