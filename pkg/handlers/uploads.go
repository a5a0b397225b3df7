package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UploadMedia stores a raw media file (video or thumbnail) and returns its
// public URL for use in a subsequent video create. Only registered when an
// object-storage bucket is configured.
func (h *Handler) UploadMedia(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File not found in form data"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to open uploaded file"})
		return
	}
	defer src.Close()

	key := fmt.Sprintf("%s/%s", uuid.New().String(), file.Filename)
	location, err := h.Uploader.Upload(src, key)
	if err != nil {
		logrus.Errorf("uploading %s: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": location})
}
