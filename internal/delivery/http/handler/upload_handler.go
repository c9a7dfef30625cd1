package handler

import (
	"net/http"

	"github.com/campusmatch/campusmatch-backend/internal/delivery/http/middleware"
	"github.com/campusmatch/campusmatch-backend/internal/infrastructure/storage"
	"github.com/campusmatch/campusmatch-backend/internal/usecase/auth"
	"github.com/gin-gonic/gin"
)

// maxUploadSize caps photo uploads at 5 MiB.
const maxUploadSize = 5 << 20

type UploadHandler struct {
	store       *storage.LocalStore
	authUseCase *auth.AuthUseCase
}

func NewUploadHandler(store *storage.LocalStore, authUseCase *auth.AuthUseCase) *UploadHandler {
	return &UploadHandler{
		store:       store,
		authUseCase: authUseCase,
	}
}

// Upload godoc
// @Summary Upload a profile photo
// @Description Accepts a multipart image and returns its public URL. Usable before registration completes, so auth is optional.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file is required"})
		return
	}

	// the owner prefix is cosmetic; uploads during registration have no
	// session yet and are stored under "guest"
	owner := ""
	if token := middleware.ExtractToken(c); token != "" {
		if userID, err := h.authUseCase.VerifyToken(token); err == nil {
			owner = userID
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read file"})
		return
	}
	defer file.Close()

	url, err := h.store.Save(owner, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
