package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/JorgeEduardo17/invoicing-microservice/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// rateEntry tracks request counts per IP within a fixed window.
type rateEntry struct {
	count     int
	windowEnd time.Time
}

// rateLimiter is a per-IP fixed-window limiter. Expired entries are purged
// lazily, at most once per purgeInterval.
type rateLimiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	entries   map[string]*rateEntry
	nextPurge time.Time
	now       func() time.Time
}

const purgeInterval = 5 * time.Minute

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		limit:   limit,
		window:  window,
		entries: make(map[string]*rateEntry),
		now:     time.Now,
	}
}

// allow records a hit for ip and reports whether it is within the limit, plus
// the end of the current window.
func (l *rateLimiter) allow(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.After(l.nextPurge) {
		l.purge(now)
		l.nextPurge = now.Add(purgeInterval)
	}

	entry, ok := l.entries[ip]
	if !ok || now.After(entry.windowEnd) {
		entry = &rateEntry{windowEnd: now.Add(l.window)}
		l.entries[ip] = entry
	}
	entry.count++
	return entry.count <= l.limit, entry.windowEnd
}

func (l *rateLimiter) purge(now time.Time) {
	purged := 0
	for ip, entry := range l.entries {
		if now.After(entry.windowEnd) {
			delete(l.entries, ip)
			purged++
		}
	}
	if purged > 0 {
		log.Debug().Int("purged", purged).Msg("rate limiter: expired entries removed")
	}
}

// RateLimiter limits each client IP to limit requests per window.
// A non-positive limit disables the limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	l := newRateLimiter(limit, window)
	return func(c *gin.Context) {
		ok, windowEnd := l.allow(c.ClientIP())
		if !ok {
			retry := int(time.Until(windowEnd).Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("too many requests, try again shortly"))
			return
		}
		c.Next()
	}
}
