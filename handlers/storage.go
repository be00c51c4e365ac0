package handlers

import (
	"net/http"

	"github.com/igorshiota/booking-app/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UploadHandler accepts admin image uploads and serves the stored files.
type UploadHandler struct {
	Storage storage.StorageService
	Logger  *zap.Logger
}

func NewUploadHandler(store storage.StorageService, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{Storage: store, Logger: logger}
}

// UploadImage stores the multipart "image" field on disk and returns the
// public URL the branding settings can reference.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.Logger.Error("failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer file.Close()

	url, err := h.Storage.SaveImage(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		h.Logger.Error("failed to store uploaded file",
			zap.String("filename", fileHeader.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// ServeImage streams a stored image. Unknown names get an explicit 404
// instead of a fallthrough.
func (h *UploadHandler) ServeImage(c *gin.Context) {
	path, err := h.Storage.ImagePath(c.Param("file"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
		return
	}
	c.File(path)
}
