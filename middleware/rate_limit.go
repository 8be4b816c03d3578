package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"careerportal-api/utils"
)

// RateLimitConfig is a fixed window budget for one endpoint.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
	Message  string
}

// fixedWindowScript increments the window counter and arms its expiry on the
// first hit, atomically.
var fixedWindowScript = redis.NewScript(`
	local current = redis.call('INCR', KEYS[1])
	if current == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	return current
`)

type RateLimiter struct {
	client            redis.Scripter
	rules             map[string]RateLimitConfig
	trustProxyHeaders bool
	now               func() time.Time
}

// NewRateLimiter limits only the paths present in rules; other paths pass
// through untouched. Clients are told apart by the connection's address
// unless trustProxyHeaders is set, in which case the address forwarded by
// the reverse proxy in front of the API is used.
func NewRateLimiter(client redis.Scripter, rules map[string]RateLimitConfig, trustProxyHeaders bool) *RateLimiter {
	return &RateLimiter{client: client, rules: rules, trustProxyHeaders: trustProxyHeaders, now: time.Now}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		config, ok := rl.configForEndpoint(r.URL.Path)
		if !ok || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		logger := zerolog.Ctx(r.Context())
		key, resetTime := rl.rateLimitKey(r, config)

		allowed, remaining, err := rl.checkRateLimit(r.Context(), key, config)
		if err != nil {
			// Redis trouble must not take submissions down with it.
			logger.Error().Err(err).Str("key", key).Msg("rate limit check failed")
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Requests))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			logger.Warn().Str("key", key).Str("path", r.URL.Path).Msg("rate limit exceeded")
			retryAfter := int64(resetTime.Sub(rl.now()).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
			utils.SendErrorResponse(w, http.StatusTooManyRequests, config.Message)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) configForEndpoint(path string) (RateLimitConfig, bool) {
	config, ok := rl.rules[strings.TrimSuffix(path, "/")]
	return config, ok
}

// rateLimitKey buckets the request by client IP, path and window start.
func (rl *RateLimiter) rateLimitKey(r *http.Request, config RateLimitConfig) (string, time.Time) {
	windowStart := rl.now().Truncate(config.Window)
	key := fmt.Sprintf("rate_limit:%s:%s:%d", clientIP(r, rl.trustProxyHeaders), strings.TrimSuffix(r.URL.Path, "/"), windowStart.Unix())
	return key, windowStart.Add(config.Window)
}

func (rl *RateLimiter) checkRateLimit(ctx context.Context, key string, config RateLimitConfig) (bool, int, error) {
	count, err := fixedWindowScript.Run(ctx, rl.client, []string{key}, config.Window.Milliseconds()).Int()
	if err != nil {
		return false, 0, err
	}

	remaining := config.Requests - count
	if remaining < 0 {
		remaining = 0
	}
	return count <= config.Requests, remaining, nil
}

// clientIP only honours forwarding headers when trustProxyHeaders is set;
// otherwise any caller could pick a fresh bucket per request.
func clientIP(r *http.Request, trustProxyHeaders bool) string {
	if trustProxyHeaders {
		if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
			ips := strings.Split(ip, ",")
			return strings.TrimSpace(ips[0])
		}

		if ip := r.Header.Get("X-Real-IP"); ip != "" {
			return ip
		}

		if ip := r.Header.Get("CF-Connecting-IP"); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
