package entity

import "time"

// VideoAdminView is the cross-entity admin report row: video joined with its
// creator plus the per-video comment count.
type VideoAdminView struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Status        string    `json:"status"`
	AverageRating float64   `json:"average_rating"`
	CreatorName   string    `json:"creator_name"`
	CreatorEmail  string    `json:"creator_email"`
	TotalComments int64     `json:"total_comments"`
	CreatedAt     time.Time `json:"created_at"`
}
