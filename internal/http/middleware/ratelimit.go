// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the request-rate governor for the generation
// endpoint: a lightweight, in-memory, sliding-window throttle with
// per-client buckets and opportunistic garbage collection.
//
// Policy:
//   - fixed integer limit N per trailing window W per client identifier
//   - on each admitted call the client's window is pruned of timestamps
//     older than W and the new timestamp appended
//   - N <= 0 disables the governor entirely (always admits)
//
// Known weak guarantees, accepted deliberately:
//   - State is process-local and resets on restart. Horizontally scaled
//     deployments get per-instance limits, not a global one.
//   - The limit is a best-effort soft cap. The mutex only guards the bucket
//     map; the policy itself makes no atomicity promise across instances.
//   - Clients without a forwarded or real address share the "unknown"
//     bucket, which is effectively unbounded-unsafe for them as a group.
package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// rateRejected counts requests rejected by the governor. No client label:
// client identifiers are unbounded and would blow up cardinality.
var rateRejected = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "rate_limited_requests_total",
	Help: "Total number of requests rejected by the rate governor.",
})

func init() { prometheus.MustRegister(rateRejected) }

// Admitter decides whether a request from the given client identifier is
// admitted at time now. Implementations must be safe for concurrent use.
type Admitter interface {
	Admit(clientID string, now time.Time) bool
}

// bucket holds one client's request timestamps inside the trailing window
// and the last time the bucket was touched (for idle eviction).
type bucket struct {
	stamps   []time.Time
	lastSeen time.Time
}

// SlidingWindowLimiter is the default Admitter: per-client timestamp lists
// pruned to the trailing window. Idle buckets are evicted after a TTL via
// opportunistic cleanup during lookups to keep memory usage bounded.
type SlidingWindowLimiter struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	buckets map[string]*bucket

	ttl      time.Duration
	cleanupN uint64
}

// NewSlidingWindowLimiter constructs a limiter admitting `limit` requests
// per `window` per client. A limit <= 0 disables limiting.
func NewSlidingWindowLimiter(limit int, window time.Duration) *SlidingWindowLimiter {
	if window <= 0 {
		window = time.Hour
	}
	ttl := window
	if ttl < 10*time.Minute {
		ttl = 10 * time.Minute
	}
	return &SlidingWindowLimiter{
		limit:   limit,
		window:  window,
		buckets: make(map[string]*bucket),
		ttl:     ttl,
	}
}

// Admit prunes the client's window, then admits and records the request if
// fewer than limit timestamps remain. Rejected requests are not recorded.
func (l *SlidingWindowLimiter) Admit(clientID string, now time.Time) bool {
	if l.limit <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Opportunistic cleanup after a threshold of lookups. Run it before
	// touching the requested bucket so an idle bucket can be evicted even
	// when it is the one being fetched.
	l.cleanupN++
	if l.cleanupN >= 5000 {
		for k, b := range l.buckets {
			if now.Sub(b.lastSeen) >= l.ttl {
				delete(l.buckets, k)
			}
		}
		l.cleanupN = 0
	}

	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{}
		l.buckets[clientID] = b
	}
	b.lastSeen = now

	// Prune timestamps that fell out of the trailing window.
	cutoff := now.Add(-l.window)
	kept := b.stamps[:0]
	for _, ts := range b.stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	b.stamps = kept

	if len(b.stamps) >= l.limit {
		return false
	}
	b.stamps = append(b.stamps, now)
	return true
}

// ClientID derives the rate-limit identity for a request: the first address
// in X-Forwarded-For, else X-Real-IP, else the shared "unknown" bucket.
func ClientID(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		first := fwd
		if i := strings.Index(fwd, ","); i >= 0 {
			first = fwd[:i]
		}
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if real := strings.TrimSpace(c.GetHeader("X-Real-IP")); real != "" {
		return real
	}
	return "unknown"
}

// RateGovernor returns a Gin middleware enforcing the admission policy on
// the routes it is attached to. Rejected requests receive:
//
//	HTTP/1.1 429 Too Many Requests
//	{ "errorCode": "RATE_LIMIT_EXCEEDED" }
func RateGovernor(adm Admitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adm.Admit(ClientID(c), time.Now()) {
			c.Next()
			return
		}
		rateRejected.Inc()
		c.Header("Retry-After", "60")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"errorCode": "RATE_LIMIT_EXCEEDED",
		})
	}
}
