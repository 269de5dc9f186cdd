package middleware

import (
	"mercado_audiovisual/internal/infrastructure/ratelimit"
	"mercado_audiovisual/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errRateLimited = pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests, try again later", http.StatusTooManyRequests)

// RejectionObserver is notified of every throttled request.
type RejectionObserver interface {
	ObserveRateLimited(route string)
}

// RateLimit throttles per authenticated user, falling back to the client
// IP. It must run after Authenticate.
func RateLimit(limiter ratelimit.Limiter, observer RejectionObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		key := "ip:" + c.ClientIP()
		if actor, ok := ActorFrom(c); ok {
			key = "user:" + actor.UserID
		}
		if !limiter.Allow(c.Request.Context(), key) {
			if observer != nil {
				observer.ObserveRateLimited(c.FullPath())
			}
			c.AbortWithStatusJSON(errRateLimited.HTTPStatus, errRateLimited.ToHTTPError())
			return
		}
		c.Next()
	}
}
