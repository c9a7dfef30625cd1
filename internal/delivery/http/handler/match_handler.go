package handler

import (
	"net/http"

	"github.com/campusmatch/campusmatch-backend/internal/usecase/match"
	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{matchUseCase: matchUseCase}
}

// ListMatches godoc
// @Summary List matches
// @Description Returns the caller's matches newest first, each with the other user and the latest message as preview.
// @Tags match
// @Produce json
// @Success 200 {array} match.MatchResponse
// @Failure 401 {object} ErrorResponse
// @Security CookieAuth
// @Router /matches [get]
func (h *MatchHandler) ListMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	matches, err := h.matchUseCase.ListMatches(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}
