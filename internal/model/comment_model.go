package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID        string     `gorm:"type:uuid;primary_key" json:"id"`
	VideoID   string     `gorm:"type:uuid;not null;index" json:"video_id"`
	UserID    string     `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Text      string     `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
