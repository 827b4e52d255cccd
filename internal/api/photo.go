package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipesnap/backend/internal/service"
)

// maxPhotoBytes caps uploaded photos at 8 MiB, matching the model
// provider's inline image limit.
const maxPhotoBytes = 8 << 20

// PhotoHandler handles ingredient photo uploads
type PhotoHandler struct {
	photoService service.IPhotoService
}

// NewPhotoHandler creates a new PhotoHandler instance
func NewPhotoHandler(photoService service.IPhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// Upload stores an uploaded photo and returns both its object URL and the
// data URI to hand to the identification call.
func (h *PhotoHandler) Upload(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}

	if fileHeader.Size > maxPhotoBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "photo must be smaller than 8MB"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read photo"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read photo"})
		return
	}

	photoURL, err := h.photoService.UploadPhoto(c.Request.Context(), userID, data, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"photo_url":      photoURL,
		"photo_data_uri": service.EncodeDataURI(data, contentType),
	})
}
