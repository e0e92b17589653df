package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "admin_session"

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login
// @Summary Login
// @Description Exchanges the shared back-office password for a session cookie
// @ID admin-login
// @Accept json
// @Produce json
// @Param input body loginRequest true "password"
// @Success 200 {object} loginResponse
// @Failure 400,401 {object} errorResponse
// @Router /api/admin/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "password is required")
		return
	}

	sess, err := h.auth.Login(c.Request.Context(), req.Password)
	if err != nil {
		serviceError(c, err)
		return
	}

	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, sess.Token, maxAge, "/", "", h.SecureCookies, true)
	c.JSON(http.StatusOK, loginResponse{Message: "Logged in", ExpiresAt: sess.ExpiresAt})
}

// Logout
// @Summary Logout
// @ID admin-logout
// @Produce json
// @Success 200 {object} messageResponse
// @Router /api/admin/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), sessionToken(c)); err != nil {
		serviceError(c, err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", h.SecureCookies, true)
	c.JSON(http.StatusOK, messageResponse{Message: "Logged out"})
}

func sessionToken(c *gin.Context) string {
	if tok, err := c.Cookie(sessionCookie); err == nil && tok != "" {
		return tok
	}
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

func (h *Handler) requireAdmin(c *gin.Context) {
	if err := h.auth.Authorize(c.Request.Context(), sessionToken(c)); err != nil {
		serviceError(c, err)
		return
	}
	c.Next()
}
