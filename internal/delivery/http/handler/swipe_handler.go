package handler

import (
	"net/http"

	"github.com/campusmatch/campusmatch-backend/internal/usecase/swipe"
	"github.com/gin-gonic/gin"
)

type SwipeHandler struct {
	swipeUseCase *swipe.SwipeUseCase
}

func NewSwipeHandler(swipeUseCase *swipe.SwipeUseCase) *SwipeHandler {
	return &SwipeHandler{swipeUseCase: swipeUseCase}
}

// Swipe godoc
// @Summary Record a swipe
// @Description Records a LEFT, RIGHT or FRIEND decision on another user. Re-swiping replaces the previous decision. The response reports whether this swipe created a new match.
// @Tags swipe
// @Accept json
// @Produce json
// @Param request body swipe.SwipeRequest true "Swipe"
// @Success 200 {object} swipe.SwipeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security CookieAuth
// @Router /swipe [post]
func (h *SwipeHandler) Swipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req swipe.SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.swipeUseCase.RecordSwipe(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// LikesCount godoc
// @Summary Count likes received
// @Description Returns how many users currently have a RIGHT or FRIEND swipe at the caller.
// @Tags swipe
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 401 {object} ErrorResponse
// @Security CookieAuth
// @Router /swipe/likes-count [get]
func (h *SwipeHandler) LikesCount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	count, err := h.swipeUseCase.LikesReceivedCount(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
