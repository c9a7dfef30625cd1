package handler

import (
	"net/http"

	"github.com/campusmatch/campusmatch-backend/internal/usecase/feed"
	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedUseCase *feed.FeedUseCase
}

func NewFeedHandler(feedUseCase *feed.FeedUseCase) *FeedHandler {
	return &FeedHandler{feedUseCase: feedUseCase}
}

// GetCandidates godoc
// @Summary Get swipeable profiles
// @Description Returns the next batch of profiles the caller hasn't swiped on, preference-filtered both ways.
// @Tags feed
// @Produce json
// @Success 200 {array} feed.CandidateResponse
// @Failure 401 {object} ErrorResponse
// @Security CookieAuth
// @Router /users [get]
func (h *FeedHandler) GetCandidates(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	candidates, err := h.feedUseCase.GetCandidates(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": candidates})
}
