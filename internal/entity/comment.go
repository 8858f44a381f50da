package entity

import "time"

// Comment is immutable once created; there is no edit or delete path.
type Comment struct {
	ID         string    `json:"id"`
	VideoID    string    `json:"video_id"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name,omitempty"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}
