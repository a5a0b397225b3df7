package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"video-share/pkg/models"
	"video-share/pkg/store"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// Register creates an account and signs the caller in. Passwords are stored
// as bcrypt hashes; the original this replaces kept them in plaintext, which
// is not acceptable for real credentials.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}
	if req.Email == "" || req.Password == "" || req.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	user := models.User{
		ID:       uuid.New().String(),
		Email:    req.Email,
		Username: req.Username,
		Password: string(hashed),
		Avatar:   placeholderAvatar(req.Email),
	}

	if err := h.Users.Create(user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
			return
		}
		logrus.Errorf("register: creating user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	h.issueToken(c, user)
}

// Login verifies credentials against the stored record.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}

	user, err := h.Users.GetByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	h.issueToken(c, user)
}

// GoogleLogin exchanges a Google id token for a session token, creating the
// account on first sign-in. Accounts created here have no password, so the
// plain login path can never match them.
func (h *Handler) GoogleLogin(c *gin.Context) {
	var req googleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}
	if req.IDToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing idToken"})
		return
	}
	if h.Google == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Google client not configured"})
		return
	}

	identity, err := h.Google.Verify(c.Request.Context(), req.IDToken)
	if err != nil {
		logrus.Errorf("google auth: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Google authentication failed"})
		return
	}

	email := identity.Email
	username := identity.Name
	if username == "" {
		username = strings.SplitN(email, "@", 2)[0]
	}
	avatar := identity.Picture
	if avatar == "" {
		avatar = placeholderAvatar(email)
	}

	user, err := h.Users.GetByEmail(email)
	if errors.Is(err, store.ErrNotFound) {
		user = models.User{
			ID:       uuid.New().String(),
			Email:    email,
			Username: username,
			Avatar:   avatar,
		}
		if err := h.Users.Create(user); err != nil {
			logrus.Errorf("google auth: creating user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
			return
		}
	} else if err != nil {
		logrus.Errorf("google auth: looking up user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	h.issueToken(c, user)
}

func (h *Handler) issueToken(c *gin.Context, user models.User) {
	token, err := h.Tokens.GenerateJWT(user.ID, user.Email)
	if err != nil {
		logrus.Errorf("signing token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error generating token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user.Public()})
}
