package middleware

import (
	"flag"
	"net/http"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// Throttle applies a fixed-window rate limit per client IP to the wrapped
// handler, using an in-memory store. X-Forwarded-For is trusted so limits
// hold behind a reverse proxy. Over-limit requests get 429.
func Throttle(period time.Duration, limit int64, next http.Handler) http.Handler {
	if flag.Lookup("test.v") != nil {
		// Don't throttle tests
		return next
	}
	rate := limiter.Rate{
		Period: period,
		Limit:  limit,
	}
	rateLimiter := stdlib.NewMiddleware(limiter.New(memory.NewStore(), rate,
		limiter.WithTrustForwardHeader(true)))
	return rateLimiter.Handler(next)
}
