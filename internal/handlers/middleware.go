package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Name of the cookie carrying the opaque session token.
const sessionCookieName = "session_token"

// Keys stored in the Gin context by sessionRequired.
const (
	ctxUserIDKey   = "userId"
	ctxUsernameKey = "username"
)

// corsMiddleware mirrors the reference deployment: wildcard origin, and
// OPTIONS preflights answered without touching any handler.
func (h *Handler) corsMiddleware(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")

	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

// sessionRequired gates mutating endpoints on a live session cookie. The
// session's identity is stored in the Gin context for the handler.
func (h *Handler) sessionRequired(c *gin.Context) {
	token, err := c.Cookie(sessionCookieName)
	if err != nil || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": errMsgAuthRequired,
		})
		return
	}

	status, err := h.services.Authorization.Check(c.Request.Context(), token)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errMsgDatabase, "session_check_failed", err)
		c.Abort()
		return
	}
	if !status.Authenticated {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": errMsgAuthRequired,
		})
		return
	}

	c.Set(ctxUserIDKey, status.User.ID)
	c.Set(ctxUsernameKey, status.User.Username)
	c.Next()
}
