package middleware

import (
	"net/http"
	"sync"
	"time"

	"go-hrapp/internal/shared/apperror"
	"go-hrapp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// DefaultLimiterIdleTTL is how long a key may go unused before its bucket
// becomes eligible for eviction.
const DefaultLimiterIdleTTL = 10 * time.Minute

type keyedLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter keeps one token bucket per key (client IP or user id).
// Buckets that are idle and full again are dropped; a fresh bucket for the
// same key behaves identically.
type KeyedRateLimiter struct {
	limiters  map[string]*keyedLimiter
	mu        sync.Mutex
	r         rate.Limit
	b         int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type KeyedRateLimiterOption func(*KeyedRateLimiter)

func WithLimiterIdleTTL(ttl time.Duration) KeyedRateLimiterOption {
	return func(k *KeyedRateLimiter) {
		k.idleTTL = ttl
	}
}

func WithLimiterClock(now func() time.Time) KeyedRateLimiterOption {
	return func(k *KeyedRateLimiter) {
		k.now = now
	}
}

func NewKeyedRateLimiter(r rate.Limit, b int, opts ...KeyedRateLimiterOption) *KeyedRateLimiter {
	k := &KeyedRateLimiter{
		limiters: make(map[string]*keyedLimiter),
		r:        r,
		b:        b,
		idleTTL:  DefaultLimiterIdleTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(k)
	}
	k.lastSweep = k.now()
	return k
}

func (k *KeyedRateLimiter) GetLimiter(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if now.Sub(k.lastSweep) >= k.idleTTL {
		k.sweep(now)
	}

	entry, exists := k.limiters[key]
	if !exists {
		entry = &keyedLimiter{limiter: rate.NewLimiter(k.r, k.b)}
		k.limiters[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter
}

// Len reports how many keys currently hold a bucket.
func (k *KeyedRateLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.limiters)
}

// sweep must be called with mu held.
func (k *KeyedRateLimiter) sweep(now time.Time) {
	for key, entry := range k.limiters {
		if now.Sub(entry.lastSeen) < k.idleTTL {
			continue
		}
		if entry.limiter.TokensAt(now) < float64(k.b) {
			continue
		}
		delete(k.limiters, key)
	}
	k.lastSweep = now
}

// RateLimitByIP: r = requests per second, b = burst
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			tooManyRequests(c, "Too many requests from this IP")
			return
		}
		c.Next()
	}
}

// RateLimitByUser must run after AuthMiddleware. Unauthenticated requests
// pass through.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserIDKey)
		if userID == "" {
			c.Next()
			return
		}
		if !limiter.GetLimiter(userID).Allow() {
			tooManyRequests(c, "Too many requests from this user")
			return
		}
		c.Next()
	}
}

func tooManyRequests(c *gin.Context, msg string) {
	response.Error(c, http.StatusTooManyRequests, apperror.CodeTooManyRequests, msg, nil)
	c.Abort()
}
