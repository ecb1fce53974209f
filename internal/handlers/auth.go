package handlers

import (
	"errors"
	"net/http"
	"time"

	"portfolio_backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errMsgActionRequired     = "Action required"
	errMsgInvalidAction      = "Invalid action"
	errMsgCredentialsNeeded  = "Username and password required"
	errMsgInvalidCredentials = "Invalid username or password"

	msgLoginSuccessful = "Login successful"
	msgLoggedOut       = "Logged out successfully"
)

// Auth requests are action-dispatched on a single endpoint, matching the
// client contract.
type authRequest struct {
	Action   *string `json:"action"`
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// AuthRequest is an exported model for Swagger docs of the auth payload.
type AuthRequest struct {
	// One of: login, logout, check
	Action   string `json:"action" example:"login"`
	Username string `json:"username,omitempty" example:"rizqi"`
	Password string `json:"password,omitempty" example:"secret"`
}

// @Summary      Auth actions
// @Description  Dispatches on "action": login establishes a session cookie, logout destroys it, check reports session state.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  AuthRequest  true  "Auth payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/auth [post]
func (h *Handler) authAction(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if req.Action == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMsgActionRequired})
		return
	}

	switch *req.Action {
	case "login":
		h.login(c, req)
	case "logout":
		h.logout(c)
	case "check":
		h.respondAuthStatus(c)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": errMsgInvalidAction})
	}
}

// @Summary      Check session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  models.AuthStatus
// @Router       /api/auth [get]
func (h *Handler) checkAuth(c *gin.Context) {
	h.respondAuthStatus(c)
}

func (h *Handler) login(c *gin.Context, req authRequest) {
	if req.Username == nil || req.Password == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMsgCredentialsNeeded})
		return
	}

	sess, err := h.services.Authorization.Login(c.Request.Context(), *req.Username, *req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("auth_login_rejected", "username", *req.Username)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": errMsgInvalidCredentials})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errMsgDatabase, "auth_login_failed", err)
		return
	}

	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	c.SetCookie(sessionCookieName, sess.Token, maxAge, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": msgLoginSuccessful,
		"user": gin.H{
			"id":       sess.UserID,
			"username": sess.Username,
		},
	})
}

// logout always succeeds, with or without a session cookie.
func (h *Handler) logout(c *gin.Context) {
	token, _ := c.Cookie(sessionCookieName)
	if err := h.services.Authorization.Logout(c.Request.Context(), token); err != nil && h.log != nil {
		h.log.Errorw("auth_logout_failed", "err", err)
	}
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": msgLoggedOut,
	})
}

// respondAuthStatus reports session state; a store failure is logged but
// surfaces as "not authenticated" so checks never fail for the client.
func (h *Handler) respondAuthStatus(c *gin.Context) {
	token, _ := c.Cookie(sessionCookieName)
	status, err := h.services.Authorization.Check(c.Request.Context(), token)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("auth_check_failed", "err", err)
		}
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, status)
}
