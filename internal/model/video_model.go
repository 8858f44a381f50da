package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoModel struct {
	ID            string        `gorm:"type:uuid;primary_key" json:"id"`
	Title         string        `gorm:"type:varchar(255);not null" json:"title"`
	Publisher     string        `gorm:"type:varchar(255)" json:"publisher"`
	Producer      string        `gorm:"type:varchar(255)" json:"producer"`
	Genre         string        `gorm:"type:varchar(100)" json:"genre"`
	AgeRating     string        `gorm:"type:varchar(20)" json:"age_rating"`
	CreatorID     string        `gorm:"type:uuid;not null;index" json:"creator_id"`
	Creator       *UserModel    `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	ObjectName    string        `gorm:"type:varchar(255);uniqueIndex;not null" json:"object_name"`
	URL           string        `gorm:"type:varchar(500)" json:"url"`
	Status        string        `gorm:"type:varchar(20);default:'uploading';index" json:"status"`
	AverageRating float64       `gorm:"default:0" json:"average_rating"`
	PosterURL     string        `gorm:"type:varchar(500)" json:"poster_url"`
	Ratings       []RatingModel `gorm:"foreignKey:VideoID" json:"ratings,omitempty"`
	CreatedAt     time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (VideoModel) TableName() string {
	return "videos"
}

func (v *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}

// RatingModel rows are unique per (video, user): a later rating by the same
// user replaces the earlier one.
type RatingModel struct {
	VideoID   string    `gorm:"type:uuid;primaryKey" json:"video_id"`
	UserID    string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	Stars     int       `gorm:"not null" json:"stars"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RatingModel) TableName() string {
	return "ratings"
}
