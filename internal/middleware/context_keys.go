package middleware

import (
	"github.com/SscSPs/sky_take_out/internal/ctxutil"
	"github.com/gin-gonic/gin"
)

// GetActorIDFromContext retrieves the authenticated employee ID from the request context.
// It returns the ID and a boolean indicating if it was found.
func GetActorIDFromContext(c *gin.Context) (int64, bool) {
	return ctxutil.ActorIDFromContext(c.Request.Context())
}
