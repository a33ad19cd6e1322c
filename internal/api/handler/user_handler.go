package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/feedback/internal/api/dto"
	"github.com/martijn/feedback/internal/api/middleware"
	"github.com/martijn/feedback/internal/core/domain"
	"github.com/martijn/feedback/internal/core/service"
)

type UserHandler struct {
	userService     *service.UserService
	feedbackService *service.FeedbackService
	cookieName      string
}

func NewUserHandler(userService *service.UserService, feedbackService *service.FeedbackService, cookieName string) *UserHandler {
	return &UserHandler{
		userService:     userService,
		feedbackService: feedbackService,
		cookieName:      cookieName,
	}
}

// GetProfile handles GET /users/:username. Profiles are owner-scoped: only
// the matching session identity may view one.
func (h *UserHandler) GetProfile(c *gin.Context) {
	username := c.Param("username")

	claims, ok := middleware.GetAuthClaims(c)
	if !ok || claims.Username != username {
		respondError(c, domain.ErrUnauthorized)
		return
	}

	user, err := h.userService.Get(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}

	feedback, err := h.feedbackService.ListByOwner(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]dto.FeedbackResponse, len(feedback))
	for i, f := range feedback {
		items[i] = toFeedbackResponse(f)
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		User:     toUserResponse(user),
		Feedback: items,
	})
}

// DeleteProfile handles DELETE /users/:username. Owner only; owned feedback
// goes with the account via the schema cascade.
func (h *UserHandler) DeleteProfile(c *gin.Context) {
	username := c.Param("username")

	claims, ok := middleware.GetAuthClaims(c)
	if !ok || claims.Username != username {
		respondError(c, domain.ErrUnauthorized)
		return
	}

	if err := h.userService.Delete(c.Request.Context(), username); err != nil {
		respondError(c, err)
		return
	}

	// The account is gone; the session cookie goes with it.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}
