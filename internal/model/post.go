package model

import "time"

// Post keeps a denormalized copy of the author's username taken at
// creation time; it does not follow later username changes.
type Post struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Content        string    `gorm:"size:280;not null" json:"content"`
	AuthorID       string    `gorm:"type:varchar(36);not null;index" json:"author_id"`
	AuthorUsername string    `gorm:"size:64;not null" json:"author_username"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
