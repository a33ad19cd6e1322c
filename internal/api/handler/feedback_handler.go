package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/martijn/feedback/internal/api/dto"
	"github.com/martijn/feedback/internal/api/middleware"
	"github.com/martijn/feedback/internal/core/domain"
	"github.com/martijn/feedback/internal/core/service"
)

type FeedbackHandler struct {
	feedbackService *service.FeedbackService
}

func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// CreateFeedback handles POST /feedback. The owner is always the session
// identity.
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	claims, ok := middleware.GetAuthClaims(c)
	if !ok {
		respondError(c, domain.ErrUnauthorized)
		return
	}

	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	feedback, err := h.feedbackService.Create(c.Request.Context(), claims.Username, req.Title, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toFeedbackResponse(feedback))
}

// GetFeedback handles GET /feedback/:id
func (h *FeedbackHandler) GetFeedback(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	feedback, err := h.feedbackService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toFeedbackResponse(feedback))
}

// ListFeedback handles GET /feedback
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	feedback, err := h.feedbackService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	total := len(feedback)
	response := dto.FeedbackListResponse{
		Items: make([]dto.FeedbackResponse, total),
		Pagination: dto.PaginationInfo{
			Total:      total,
			Page:       1,
			PerPage:    total,
			TotalPages: 1,
		},
	}
	for i, f := range feedback {
		response.Items[i] = toFeedbackResponse(f)
	}

	c.JSON(http.StatusOK, response)
}

// UpdateFeedback handles PUT /feedback/:id. Owner only.
func (h *FeedbackHandler) UpdateFeedback(c *gin.Context) {
	claims, ok := middleware.GetAuthClaims(c)
	if !ok {
		respondError(c, domain.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	var req dto.UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	feedback, err := h.feedbackService.Update(c.Request.Context(), claims.Username, id, req.Title, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toFeedbackResponse(feedback))
}

// DeleteFeedback handles DELETE /feedback/:id. Owner only.
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	claims, ok := middleware.GetAuthClaims(c)
	if !ok {
		respondError(c, domain.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.feedbackService.Delete(c.Request.Context(), claims.Username, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
