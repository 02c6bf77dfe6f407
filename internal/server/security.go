package server

import (
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// RequestSizeLimitMiddleware caps request bodies; handlers see a
// *http.MaxBytesError once the cap is crossed.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

type ipWindow struct {
	start time.Time
	count int
}

// RateLimiter allows limit requests per client IP in a window that starts at
// the client's first request. Tracked clients live in a bounded LRU so a
// flood of distinct addresses cannot grow memory.
type RateLimiter struct {
	name   string
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	clients *expirable.LRU[string, *ipWindow]
}

// NewRateLimiter builds a limiter; name labels its log lines
func NewRateLimiter(name string, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		name:    name,
		limit:   limit,
		window:  window,
		now:     time.Now,
		clients: expirable.NewLRU[string, *ipWindow](RateLimitTrackedClients, nil, window),
	}
}

// Allow counts one request for ip and reports whether it is within budget
func (l *RateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.clients.Get(ip)
	if !ok || now.Sub(w.start) >= l.window {
		w = &ipWindow{start: now}
	}
	w.count++
	l.clients.Add(ip, w)

	if w.count <= l.limit {
		return true
	}
	if (w.count-l.limit)%RateLimitLogEvery == 1 {
		slog.Warn(SecurityAlertHighRate, "limiter", l.name, "ip", ip, "count_in_window", w.count)
	}
	return false
}

// RetryAfter is how long ip must wait for its window to reset
func (l *RateLimiter) RetryAfter(ip string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	w, ok := l.clients.Peek(ip)
	if !ok {
		return 0
	}
	if d := l.window - l.now().Sub(w.start); d > 0 {
		return d
	}
	return 0
}

// RateLimitMiddleware answers 429 with Retry-After once a client is over budget
func RateLimitMiddleware(proxies TrustedProxies, limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := proxies.ClientIP(r)
			if !limiter.Allow(ip) {
				secs := int(limiter.RetryAfter(ip).Round(time.Second) / time.Second)
				w.Header().Set(HeaderRetryAfter, strconv.Itoa(max(secs, 1)))
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// TrustedProxies are the peers whose X-Forwarded-For header is believed
type TrustedProxies []netip.Prefix

// ParseTrustedProxies accepts single addresses and CIDR ranges. Invalid
// entries are logged and skipped.
func ParseTrustedProxies(entries []string) TrustedProxies {
	var out TrustedProxies
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if p, err := netip.ParsePrefix(e); err == nil {
			out = append(out, p.Masked())
			continue
		}
		if a, err := netip.ParseAddr(e); err == nil {
			out = append(out, netip.PrefixFrom(a.Unmap(), a.Unmap().BitLen()))
			continue
		}
		slog.Warn(LogMsgInvalidTrustedProxy, "entry", e)
	}
	return out
}

func (t TrustedProxies) contains(ip string) bool {
	a, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	a = a.Unmap()
	for _, p := range t {
		if p.Contains(a) {
			return true
		}
	}
	return false
}

// ClientIP returns the rightmost X-Forwarded-For hop when the peer is a
// trusted proxy, otherwise the peer address.
func (t TrustedProxies) ClientIP(r *http.Request) string {
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}
	if !t.contains(remote) {
		return remote
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remote
	}
	hops := strings.Split(forwarded, ",")
	if hop := strings.TrimSpace(hops[len(hops)-1]); hop != "" {
		return hop
	}
	return remote
}

// SecurityHeadersMiddleware adds browser hardening headers to every response
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			h.Set(HeaderCrossOriginResource, HeaderValueSameOriginLower)
			next.ServeHTTP(w, r)
		})
	}
}
