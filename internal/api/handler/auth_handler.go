package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/feedback/internal/api/dto"
	"github.com/martijn/feedback/internal/api/middleware"
	"github.com/martijn/feedback/internal/core/service"
)

const sessionExpiresIn = service.SessionExpirationHours * 3600

type AuthHandler struct {
	userService *service.UserService
	authService *service.AuthService
	cookieName  string
}

func NewAuthHandler(userService *service.UserService, authService *service.AuthService, cookieName string) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authService: authService,
		cookieName:  cookieName,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	// Already authenticated callers are sent to their own profile instead of
	// re-registering.
	if claims, ok := middleware.GetAuthClaims(c); ok {
		c.Redirect(http.StatusSeeOther, "/users/"+claims.Username)
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Username, req.Password, req.Email, req.FirstName, req.LastName)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.authService.IssueSession(user.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	h.setSessionCookie(c, token)

	c.JSON(http.StatusCreated, dto.SessionResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: sessionExpiresIn,
		User:      toUserResponse(user),
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	if claims, ok := middleware.GetAuthClaims(c); ok {
		c.Redirect(http.StatusSeeOther, "/users/"+claims.Username)
		return
	}

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.authService.IssueSession(user.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	h.setSessionCookie(c, token)

	c.JSON(http.StatusOK, dto.SessionResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: sessionExpiresIn,
		User:      toUserResponse(user),
	})
}

// Logout handles POST /auth/logout. Clearing the cookie always succeeds,
// authenticated or not.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, sessionExpiresIn, "/", "", false, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
}
