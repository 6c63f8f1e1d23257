package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/templui/taskboard/internal/response"
)

// RateLimiter tracks request counts per IP address
type RateLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int           // Max requests allowed
	window   time.Duration // Time window for rate limiting
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}

	// Start cleanup goroutine to prevent memory leak
	go rl.cleanupLoop()

	return rl
}

// Allow checks if a request from ip should be allowed. When it is not,
// retryAfter is how long until the oldest counted request leaves the window.
func (rl *RateLimiter) Allow(ip string) (ok bool, retryAfter time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window)

	// Drop requests outside the window, keeping order (oldest first)
	requests := rl.requests[ip]
	valid := requests[:0]
	for _, reqTime := range requests {
		if reqTime.After(cutoff) {
			valid = append(valid, reqTime)
		}
	}

	if len(valid) >= rl.limit {
		rl.requests[ip] = valid
		return false, valid[0].Add(rl.window).Sub(now)
	}

	rl.requests[ip] = append(valid, now)
	return true, 0
}

// cleanupLoop periodically removes old entries to prevent memory leak
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.cleanup()
	}
}

// cleanup removes IPs with no recent requests
func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window * 2) // Keep data for 2x window

	for ip, requests := range rl.requests {
		// Check if all requests are old
		allOld := true
		for _, reqTime := range requests {
			if reqTime.After(cutoff) {
				allOld = false
				break
			}
		}

		// Remove IP if all requests are old
		if allOld {
			delete(rl.requests, ip)
		}
	}
}

// RateLimitAuth creates middleware for register and login.
// limit requests per window per client IP; 0 disables limiting.
// Forwarding headers are only honored when trustProxy is set.
func RateLimitAuth(limit int, window time.Duration, trustProxy bool) func(http.HandlerFunc) http.HandlerFunc {
	if limit <= 0 {
		return func(next http.HandlerFunc) http.HandlerFunc { return next }
	}
	limiter := NewRateLimiter(limit, window)

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ip := getClientIP(r, trustProxy)

			ok, retryAfter := limiter.Allow(ip)
			if !ok {
				slog.Warn("rate limit exceeded",
					"ip", ip,
					"path", r.URL.Path,
				)
				w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
				response.Error(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
				return
			}

			next(w, r)
		}
	}
}

// getClientIP extracts real client IP from request. X-Forwarded-For and
// X-Real-IP are client-controlled unless a proxy in front rewrites them.
func getClientIP(r *http.Request, trustProxy bool) string {
	if !trustProxy {
		return remoteHost(r)
	}

	// Check X-Forwarded-For header (proxy/load balancer)
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		// Take first IP in list
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	// Check X-Real-IP header
	xri := r.Header.Get("X-Real-IP")
	if xri != "" {
		return strings.TrimSpace(xri)
	}

	return remoteHost(r)
}

// remoteHost is RemoteAddr without the port
func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
