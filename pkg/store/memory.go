package store

import (
	"sync"

	"video-share/pkg/models"
)

// MemoryUserStore keeps users in a map guarded by a mutex. The original
// runtime serialized requests implicitly; with concurrent handlers the
// exclusion has to be explicit.
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.User)}
}

func (s *MemoryUserStore) GetByEmail(email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (s *MemoryUserStore) Create(u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.Email]; ok {
		return ErrDuplicateEmail
	}
	s.users[u.Email] = u
	return nil
}

// MemoryVideoStore keeps videos in a slice, newest first.
type MemoryVideoStore struct {
	mu     sync.Mutex
	videos []models.Video
}

func NewMemoryVideoStore() *MemoryVideoStore {
	return &MemoryVideoStore{}
}

func (s *MemoryVideoStore) List() ([]models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Video, len(s.videos))
	copy(out, s.videos)
	return out, nil
}

func (s *MemoryVideoStore) Get(id string) (models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.videos {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Video{}, ErrNotFound
}

func (s *MemoryVideoStore) Create(v models.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos = append([]models.Video{v}, s.videos...)
	return nil
}

func (s *MemoryVideoStore) Update(id string, apply func(*models.Video)) (models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.videos {
		if s.videos[i].ID == id {
			apply(&s.videos[i])
			return s.videos[i], nil
		}
	}
	return models.Video{}, ErrNotFound
}

func (s *MemoryVideoStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.videos {
		if s.videos[i].ID == id {
			s.videos = append(s.videos[:i], s.videos[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
