package models

// User is an account record keyed by email. The password field holds a
// bcrypt hash and is never serialized.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"-"`
	Avatar   string `json:"avatar"`
}

// PublicUser is the subset of User returned to clients.
type PublicUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Username: u.Username, Avatar: u.Avatar}
}

type Video struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`
	VideoURL    string   `json:"videoUrl"`
	Duration    int      `json:"duration"`
	Views       int      `json:"views"`
	Likes       int      `json:"likes"`
	UploadDate  string   `json:"uploadDate"`
	UserID      string   `json:"userId"`
	Username    string   `json:"username"`
	UserAvatar  string   `json:"userAvatar"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
}

// DefaultCategory is applied when an upload does not name one.
const DefaultCategory = "Education"

// Categories is the fixed label set the client filters on.
var Categories = []string{
	"Education",
	"Documentary",
	"Music",
	"Gaming",
	"Technology",
	"Sports",
	"Entertainment",
}
