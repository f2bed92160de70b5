package botcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenHeader carries the client-side bot-protection token.
const TokenHeader = "X-Verification-Token"

// Gate rejects requests whose token the provider refuses. Provider
// outages fail open so the protection layer cannot take registration
// down with it.
func Gate(verifier *HTTPVerifier, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			reject(c)
			return
		}

		result, err := verifier.Verify(c.Request.Context(), token, c.ClientIP())
		if err != nil {
			logger.Warnw("bot verification unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !verifier.Accept(result) {
			logger.Infow("bot verification rejected request",
				"score", result.Score,
				"action", result.Action,
			)
			reject(c)
			return
		}

		c.Next()
	}
}

func reject(c *gin.Context) {
	resp := struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}{}
	resp.Error.Code = "BOT_CHECK_FAILED"
	resp.Error.Message = "request failed bot verification"
	c.AbortWithStatusJSON(http.StatusBadRequest, resp)
}
