package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/sebasr/greeter-service/internal/handlers"
)

// RateLimit creates a per-IP rate limiting middleware allowing limit requests
// per period. A limit of zero or less disables limiting.
func RateLimit(limit int64, period time.Duration) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	rate := limiter.Rate{
		Period: period,
		Limit:  limit,
	}

	// Create in-memory store
	store := memory.NewStore()
	instance := limiter.New(store, rate)

	return mgin.NewMiddleware(instance, mgin.WithLimitReachedHandler(func(c *gin.Context) {
		c.PureJSON(http.StatusTooManyRequests, handlers.ErrorResponse{Error: handlers.MsgTooManyRequests})
		c.Abort()
	}))
}
