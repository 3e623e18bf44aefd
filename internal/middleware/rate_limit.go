package middleware

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"health-tracker-server/config"
	"health-tracker-server/internal/model/requestresponse"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter *rate.Limiter
	mu      sync.Mutex
	last    time.Time
}

func (v *visitor) allow(now time.Time) bool {
	v.mu.Lock()
	v.last = now
	v.mu.Unlock()
	return v.limiter.AllowN(now, 1)
}

func (v *visitor) idleSince(now time.Time) time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return now.Sub(v.last)
}

// RateLimiter : token bucket на IP, IP хранятся в LRU ограниченного размера
type RateLimiter struct {
	visitors *lru.Cache[string, *visitor]
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
}

func NewRateLimiter(cfg *config.RateLimitConfig) (*RateLimiter, error) {
	visitors, err := lru.New[string, *visitor](cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	return &RateLimiter{
		visitors: visitors,
		limit:    rate.Limit(cfg.RPS),
		burst:    cfg.Burst,
		ttl:      cfg.TTL,
		now:      time.Now,
	}, nil
}

// RunCleanup : удаляет IP, неактивные дольше ttl, до отмены ctx
func (l *RateLimiter) RunCleanup(ctx context.Context) {
	if l.ttl <= 0 {
		return
	}
	ticker := time.NewTicker(l.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.evictIdle()
		}
	}
}

func (l *RateLimiter) evictIdle() {
	now := l.now()
	for _, key := range l.visitors.Keys() {
		if v, ok := l.visitors.Peek(key); ok && v.idleSince(now) > l.ttl {
			l.visitors.Remove(key)
		}
	}
}

func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host := clientIP(r)

		v, ok := l.visitors.Get(host)
		if !ok {
			v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
			// параллельный запрос мог уже добавить этот IP
			if existing, found, _ := l.visitors.PeekOrAdd(host, v); found {
				v = existing
			}
		}

		if !v.allow(l.now()) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(requestresponse.ErrorResponse{
				Error: requestresponse.ErrorDetail{
					Code: http.StatusTooManyRequests,
					Text: "rate limit exceeded",
				},
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
