package handler

import (
	"net/http"

	"github.com/campusmatch/campusmatch-backend/internal/usecase/message"
	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUseCase *message.MessageUseCase
}

func NewMessageHandler(messageUseCase *message.MessageUseCase) *MessageHandler {
	return &MessageHandler{messageUseCase: messageUseCase}
}

// GetThread godoc
// @Summary Get a chat thread
// @Description Returns a match's messages oldest first. Only match members may read.
// @Tags message
// @Produce json
// @Param matchId query string true "Match id"
// @Success 200 {object} message.ThreadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security CookieAuth
// @Router /messages [get]
func (h *MessageHandler) GetThread(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	matchID := c.Query("matchId")
	if matchID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "matchId is required"})
		return
	}

	thread, err := h.messageUseCase.GetThread(c.Request.Context(), userID, matchID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, thread)
}

// Send godoc
// @Summary Send a message
// @Description Appends a message to one of the caller's match threads.
// @Tags message
// @Accept json
// @Produce json
// @Param request body message.SendRequest true "Message"
// @Success 201 {object} domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security CookieAuth
// @Router /messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req message.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	msg, err := h.messageUseCase.Send(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}
