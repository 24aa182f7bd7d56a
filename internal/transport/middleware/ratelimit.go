package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter is a per-client token bucket limiter. Clients are keyed by
// remote IP without the port.
type RateLimiter struct {
	buckets sync.Map // map[string]*bucket
	idleTTL time.Duration
	stop    chan struct{}
	once    sync.Once
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	perSecond  float64
	lastRefill time.Time
}

// NewRateLimiter starts a limiter whose idle buckets are swept every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		idleTTL: 2 * cleanupInterval,
		stop:    make(chan struct{}),
	}
	go rl.sweep(cleanupInterval)
	return rl
}

// Stop terminates the sweeper. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows up to perMinute requests per client, refilled continuously.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	retryAfter := strconv.Itoa(int(60.0/float64(perMinute)) + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.take(clientKey(r), perMinute) {
				rateLimited.Inc()
				w.Header().Set("Retry-After", retryAfter)
				writePlainError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) take(key string, perMinute int) bool {
	capacity := float64(perMinute)
	val, _ := rl.buckets.LoadOrStore(key, &bucket{
		tokens:     capacity,
		capacity:   capacity,
		perSecond:  capacity / 60.0,
		lastRefill: time.Now(),
	})
	return val.(*bucket).allow(time.Now())
}

func (b *bucket) allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = min(b.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*b.perSecond)
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (b *bucket) idleSince(now time.Time) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return now.Sub(b.lastRefill)
}

func (rl *RateLimiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.buckets.Range(func(key, value any) bool {
				if value.(*bucket).idleSince(now) > rl.idleTTL {
					rl.buckets.Delete(key)
				}
				return true
			})
		}
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
