package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"video-share/pkg/auth"
	"video-share/pkg/models"
	"video-share/pkg/store"
)

type createVideoRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`
	VideoURL    string   `json:"videoUrl"`
	Duration    int      `json:"duration"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
	Username    string   `json:"username"`
	UserAvatar  string   `json:"userAvatar"`
}

// ListVideos returns the whole catalog newest-first. Filtering, search and
// sorting happen client-side over the full list.
func (h *Handler) ListVideos(c *gin.Context) {
	videos, err := h.Videos.List()
	if err != nil {
		logrus.Errorf("listing videos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (h *Handler) GetVideo(c *gin.Context) {
	video, err := h.Videos.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}
	c.JSON(http.StatusOK, video)
}

// CreateVideo adds a record owned by the caller and prepends it to the
// catalog.
func (h *Handler) CreateVideo(c *gin.Context) {
	var req createVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}
	if req.Title == "" || req.VideoURL == "" || req.Thumbnail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}

	callerID := c.GetString(auth.CtxUserID)
	callerEmail := c.GetString(auth.CtxEmail)

	username := req.Username
	if username == "" {
		username = "user"
	}
	userAvatar := req.UserAvatar
	if userAvatar == "" {
		userAvatar = placeholderAvatar(callerEmail)
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	category := req.Category
	if category == "" {
		category = models.DefaultCategory
	}

	video := models.Video{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		VideoURL:    req.VideoURL,
		Duration:    req.Duration,
		Views:       0,
		Likes:       0,
		UploadDate:  time.Now().Format("2006-01-02"),
		UserID:      callerID,
		Username:    username,
		UserAvatar:  userAvatar,
		Tags:        tags,
		Category:    category,
	}

	if err := h.Videos.Create(video); err != nil {
		logrus.Errorf("creating video: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, video)
}

// UpdateVideo shallow-merges the supplied fields onto the record. Every
// field is client-writable, counters and ownership included; the token
// check on the route is the only gate.
func (h *Handler) UpdateVideo(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	video, err := h.Videos.Update(c.Param("id"), func(v *models.Video) {
		applyPatch(v, patch)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
			return
		}
		logrus.Errorf("updating video: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *Handler) DeleteVideo(c *gin.Context) {
	if err := h.Videos.Delete(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
			return
		}
		logrus.Errorf("deleting video: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// applyPatch copies recognized fields from a decoded JSON object onto the
// video. JSON numbers arrive as float64.
func applyPatch(v *models.Video, patch map[string]interface{}) {
	setString := func(key string, dst *string) {
		if s, ok := patch[key].(string); ok {
			*dst = s
		}
	}
	setInt := func(key string, dst *int) {
		if n, ok := patch[key].(float64); ok {
			*dst = int(n)
		}
	}
	setString("id", &v.ID)
	setString("title", &v.Title)
	setString("description", &v.Description)
	setString("thumbnail", &v.Thumbnail)
	setString("videoUrl", &v.VideoURL)
	setString("uploadDate", &v.UploadDate)
	setString("userId", &v.UserID)
	setString("username", &v.Username)
	setString("userAvatar", &v.UserAvatar)
	setString("category", &v.Category)
	setInt("duration", &v.Duration)
	setInt("views", &v.Views)
	setInt("likes", &v.Likes)
	if raw, ok := patch["tags"].([]interface{}); ok {
		tags := make([]string, 0, len(raw))
		for _, t := range raw {
			if s, ok := t.(string); ok {
				tags = append(tags, s)
			}
		}
		v.Tags = tags
	}
}
