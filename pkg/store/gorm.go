package store

import (
	"encoding/json"

	"github.com/jinzhu/gorm"

	"video-share/pkg/models"
)

// AutoMigrate creates the backing tables for the gorm stores.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&userRow{}, &videoRow{}).Error
}

// userRow and videoRow are the persisted shapes. Tags are kept as a JSON
// column since sqlite has no array type.
type userRow struct {
	ID       uint   `gorm:"primary_key"`
	UserID   string `gorm:"unique_index"`
	Email    string `gorm:"unique_index"`
	Username string
	Password string
	Avatar   string
}

type videoRow struct {
	// Seq is auto-incremented on insert; listing newest-first orders by it
	// descending, which reproduces the prepend semantics of the memory store.
	Seq         uint   `gorm:"primary_key"`
	VideoID     string `gorm:"unique_index"`
	Title       string
	Description string
	Thumbnail   string
	VideoURL    string
	Duration    int
	Views       int
	Likes       int
	UploadDate  string
	UserID      string
	Username    string
	UserAvatar  string
	Tags        string
	Category    string
}

func (r videoRow) toModel() models.Video {
	tags := []string{}
	if r.Tags != "" {
		json.Unmarshal([]byte(r.Tags), &tags)
	}
	return models.Video{
		ID:          r.VideoID,
		Title:       r.Title,
		Description: r.Description,
		Thumbnail:   r.Thumbnail,
		VideoURL:    r.VideoURL,
		Duration:    r.Duration,
		Views:       r.Views,
		Likes:       r.Likes,
		UploadDate:  r.UploadDate,
		UserID:      r.UserID,
		Username:    r.Username,
		UserAvatar:  r.UserAvatar,
		Tags:        tags,
		Category:    r.Category,
	}
}

func (r *videoRow) fromModel(v models.Video) {
	tags, _ := json.Marshal(v.Tags)
	r.VideoID = v.ID
	r.Title = v.Title
	r.Description = v.Description
	r.Thumbnail = v.Thumbnail
	r.VideoURL = v.VideoURL
	r.Duration = v.Duration
	r.Views = v.Views
	r.Likes = v.Likes
	r.UploadDate = v.UploadDate
	r.UserID = v.UserID
	r.Username = v.Username
	r.UserAvatar = v.UserAvatar
	r.Tags = string(tags)
	r.Category = v.Category
}

// GormUserStore persists users through gorm, same contract as the memory
// store but surviving restarts.
type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) GetByEmail(email string) (models.User, error) {
	var row userRow
	if err := s.db.Where("email = ?", email).First(&row).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return models.User{
		ID:       row.UserID,
		Email:    row.Email,
		Username: row.Username,
		Password: row.Password,
		Avatar:   row.Avatar,
	}, nil
}

func (s *GormUserStore) Create(u models.User) error {
	var existing userRow
	err := s.db.Where("email = ?", u.Email).First(&existing).Error
	if err == nil {
		return ErrDuplicateEmail
	}
	if !gorm.IsRecordNotFoundError(err) {
		return err
	}
	row := userRow{
		UserID:   u.ID,
		Email:    u.Email,
		Username: u.Username,
		Password: u.Password,
		Avatar:   u.Avatar,
	}
	return s.db.Create(&row).Error
}

// GormVideoStore persists the catalog through gorm.
type GormVideoStore struct {
	db *gorm.DB
}

func NewGormVideoStore(db *gorm.DB) *GormVideoStore {
	return &GormVideoStore{db: db}
}

func (s *GormVideoStore) List() ([]models.Video, error) {
	var rows []videoRow
	if err := s.db.Order("seq desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]models.Video, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

func (s *GormVideoStore) Get(id string) (models.Video, error) {
	var row videoRow
	if err := s.db.Where("video_id = ?", id).First(&row).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return models.Video{}, ErrNotFound
		}
		return models.Video{}, err
	}
	return row.toModel(), nil
}

func (s *GormVideoStore) Create(v models.Video) error {
	var row videoRow
	row.fromModel(v)
	return s.db.Create(&row).Error
}

func (s *GormVideoStore) Update(id string, apply func(*models.Video)) (models.Video, error) {
	var row videoRow
	if err := s.db.Where("video_id = ?", id).First(&row).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return models.Video{}, ErrNotFound
		}
		return models.Video{}, err
	}
	v := row.toModel()
	apply(&v)
	seq := row.Seq
	row.fromModel(v)
	row.Seq = seq
	if err := s.db.Save(&row).Error; err != nil {
		return models.Video{}, err
	}
	return v, nil
}

func (s *GormVideoStore) Delete(id string) error {
	res := s.db.Where("video_id = ?", id).Delete(&videoRow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
