package public

import (
	handlershared "github.com/TejasDharmale/Kata-Sweet-shop-management/internal/http/handlers/shared"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/http/response"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

// getSessionID reads the session id placed by the session middleware.
// A missing id is a wiring bug, not a client error.
func getSessionID(c *gin.Context) (string, bool) {
	value, ok := c.Get("session_id")
	if !ok {
		respondError(c, response.CodeInternal, "session missing", nil)
		return "", false
	}
	id, ok := value.(string)
	if !ok || id == "" {
		respondError(c, response.CodeInternal, "session invalid", nil)
		return "", false
	}
	return id, true
}
