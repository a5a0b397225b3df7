package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"video-share/pkg/auth"
	"video-share/pkg/store"
)

// Uploader stores a media object and returns its public URL.
type Uploader interface {
	Upload(file multipart.File, key string) (string, error)
}

// Handler carries the stores and auth collaborators for all routes.
type Handler struct {
	Users    store.UserStore
	Videos   store.VideoStore
	Tokens   *auth.Manager
	Google   auth.GoogleVerifier
	Uploader Uploader
}

func New(users store.UserStore, videos store.VideoStore, tokens *auth.Manager) *Handler {
	return &Handler{Users: users, Videos: videos, Tokens: tokens}
}

// Routes registers every endpoint. Reads are public; mutations sit behind
// the token middleware. The upload route only exists when an uploader is
// wired.
func (h *Handler) Routes(r *gin.Engine) {
	r.GET("/", h.Health)

	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/google", h.GoogleLogin)

	requireAuth := auth.Middleware(h.Tokens)
	r.GET("/videos", h.ListVideos)
	r.GET("/videos/:id", h.GetVideo)
	r.POST("/videos", requireAuth, h.CreateVideo)
	r.PATCH("/videos/:id", requireAuth, h.UpdateVideo)
	r.DELETE("/videos/:id", requireAuth, h.DeleteVideo)
	if h.Uploader != nil {
		r.POST("/uploads", requireAuth, h.UploadMedia)
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "video-share-backend"})
}

// placeholderAvatar derives a deterministic avatar URL from an email.
func placeholderAvatar(email string) string {
	return fmt.Sprintf("https://i.pravatar.cc/150?u=%s", url.QueryEscape(email))
}
