package store

import (
	"errors"

	"video-share/pkg/models"
)

// ErrNotFound is returned when a record id has no match.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned by UserStore.Create when the email is taken.
var ErrDuplicateEmail = errors.New("user already exists")

// UserStore holds account records keyed by email. At most one record may
// exist per email; records are never updated or deleted.
type UserStore interface {
	GetByEmail(email string) (models.User, error)
	Create(u models.User) error
}

// VideoStore owns the ordered video collection. Create prepends, so List
// returns records newest-first. Update applies a mutation to the stored
// record in place and returns the result.
type VideoStore interface {
	List() ([]models.Video, error)
	Get(id string) (models.Video, error)
	Create(v models.Video) error
	Update(id string, apply func(*models.Video)) (models.Video, error)
	Delete(id string) error
}
