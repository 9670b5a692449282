package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxEntries caps the limiter map so hostile traffic cannot grow it without bound.
const maxEntries = 10000

// IPRateLimiter keeps a token bucket per client IP.
type IPRateLimiter struct {
	mu             sync.Mutex
	limiters       map[string]*limiterEntry
	rate           rate.Limit
	burst          int
	cleanup        time.Duration
	trustedProxies []*net.IPNet
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// New creates a per-IP rate limiter allowing r requests per second with the
// given burst. trustedProxies lists CIDR ranges (or single IPs) whose
// X-Forwarded-For headers may be believed; when empty, forwarding headers are
// trusted from any peer.
func New(r rate.Limit, burst int, cleanup time.Duration, trustedProxies []string) *IPRateLimiter {
	l := &IPRateLimiter{
		limiters: make(map[string]*limiterEntry),
		rate:     r,
		burst:    burst,
		cleanup:  cleanup,
	}

	for _, entry := range trustedProxies {
		if ipnet := parseCIDROrIP(entry); ipnet != nil {
			l.trustedProxies = append(l.trustedProxies, ipnet)
		}
	}

	go l.evictStale()

	return l
}

// Middleware rejects requests over the limit with 429.
func (l *IPRateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.limiterFor(l.clientIP(r)).Allow() {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (l *IPRateLimiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.limiters[ip]
	if !ok {
		if len(l.limiters) >= maxEntries {
			l.evictOldestLocked()
		}
		entry = &limiterEntry{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[ip] = entry
	}
	entry.lastAccess = time.Now()
	return entry.limiter
}

func (l *IPRateLimiter) evictOldestLocked() {
	var oldestIP string
	var oldestTime time.Time
	for ip, entry := range l.limiters {
		if oldestIP == "" || entry.lastAccess.Before(oldestTime) {
			oldestIP = ip
			oldestTime = entry.lastAccess
		}
	}
	if oldestIP != "" {
		delete(l.limiters, oldestIP)
	}
}

func (l *IPRateLimiter) evictStale() {
	ticker := time.NewTicker(l.cleanup)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		cutoff := time.Now().Add(-l.cleanup * 2)
		for ip, entry := range l.limiters {
			if entry.lastAccess.Before(cutoff) {
				delete(l.limiters, ip)
			}
		}
		l.mu.Unlock()
	}
}

// clientIP resolves the originating client address, honoring forwarding
// headers only when the direct peer is a trusted proxy.
func (l *IPRateLimiter) clientIP(r *http.Request) string {
	remoteIP := parseAddr(r.RemoteAddr)

	if len(l.trustedProxies) > 0 && !l.isTrusted(remoteIP) {
		return remoteIP.String()
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if parsed := net.ParseIP(first); parsed != nil {
			return parsed.String()
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		if parsed := net.ParseIP(xri); parsed != nil {
			return parsed.String()
		}
	}
	return remoteIP.String()
}

func (l *IPRateLimiter) isTrusted(ip net.IP) bool {
	for _, ipnet := range l.trustedProxies {
		if ipnet.Contains(ip) {
			return true
		}
	}
	return false
}

func parseCIDROrIP(entry string) *net.IPNet {
	if _, ipnet, err := net.ParseCIDR(entry); err == nil {
		return ipnet
	}
	ip := net.ParseIP(entry)
	if ip == nil {
		return nil
	}
	suffix := "/32"
	if ip.To4() == nil {
		suffix = "/128"
	}
	_, ipnet, _ := net.ParseCIDR(entry + suffix)
	return ipnet
}

func parseAddr(addr string) net.IP {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return net.ParseIP(host)
	}
	return net.ParseIP(addr)
}
