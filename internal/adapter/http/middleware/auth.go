package middleware

import (
	"log"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/infrastructure/identity"
	"mercado_audiovisual/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid bearer token", http.StatusUnauthorized)

// TokenVerifier resolves a bearer token into the calling Actor.
type TokenVerifier interface {
	Verify(token string) (entities.Actor, error)
}

var _ TokenVerifier = (*identity.JWTVerifier)(nil)

// Authenticate rejects requests without a valid bearer token and stores the
// resolved Actor in the gin context.
func Authenticate(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := identity.BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		actor, err := verifier.Verify(token)
		if err != nil {
			log.Printf("[auth][middleware] token rejected path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		SetActor(c, actor)
		c.Next()
	}
}

func SetActor(c *gin.Context, actor entities.Actor) {
	c.Set(actorKey, actor)
}

// ActorFrom returns the Actor stored by Authenticate.
func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok && actor.UserID != ""
}
