package entity

import "time"

type VideoStatus string

const (
	// StatusUploading: the record exists and an upload URL has been issued,
	// but the client has not confirmed the upload yet.
	StatusUploading VideoStatus = "uploading"
	// StatusReady is terminal; there is no transition back to uploading.
	StatusReady VideoStatus = "ready"
)

type Video struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Publisher     string      `json:"publisher,omitempty"`
	Producer      string      `json:"producer,omitempty"`
	Genre         string      `json:"genre,omitempty"`
	AgeRating     string      `json:"age_rating,omitempty"`
	CreatorID     string      `json:"creator_id"`
	Creator       *User       `json:"creator,omitempty"`
	ObjectName    string      `json:"object_name"`
	URL           string      `json:"url,omitempty"`
	Status        VideoStatus `json:"status"`
	AverageRating float64     `json:"average_rating"`
	PosterURL     string      `json:"poster_url,omitempty"`
	Ratings       []Rating    `json:"ratings,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// Rating is embedded in its video; at most one exists per (video, user).
type Rating struct {
	UserID    string    `json:"user_id"`
	Stars     int       `json:"stars"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RatingSummary is the denormalized aggregate returned after a rate call.
type RatingSummary struct {
	AverageRating float64 `json:"average_rating"`
	Count         int64   `json:"count"`
}
