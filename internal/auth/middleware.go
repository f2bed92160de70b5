package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackfest/api/internal/config"
)

// credentialsMatch compares in constant time regardless of which field
// differs.
func credentialsMatch(cfg config.AdminConfig, username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.Password)) == 1
	return userOK && passOK
}

// AdminRequired authenticates admin endpoints. A request passes with
// either valid HTTP Basic credentials or a session cookie issued by the
// login endpoint.
func AdminRequired(cfg config.AdminConfig, sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if username, password, ok := c.Request.BasicAuth(); ok {
			if credentialsMatch(cfg, username, password) {
				c.Next()
				return
			}
			unauthorized(c)
			return
		}

		if cookie, err := c.Cookie(cfg.CookieName); err == nil {
			if _, err := sessions.Verify(cookie); err == nil {
				c.Next()
				return
			}
		}

		unauthorized(c)
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", `Basic realm="admin"`)
	resp := struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}{}
	resp.Error.Code = "UNAUTHORIZED"
	resp.Error.Message = "admin credentials required"
	c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
}
