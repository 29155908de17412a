package model

import "time"

const (
	ActivityPostCreated = "post.created"
	ActivityPostDeleted = "post.deleted"
)

// Activity is an audit record of a post mutation, written asynchronously
// by the activity worker.
type Activity struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Verb      string    `gorm:"size:32;not null;index" json:"verb"`
	PostID    string    `gorm:"type:varchar(36);not null;index" json:"post_id"`
	ActorID   string    `gorm:"type:varchar(36);not null;index" json:"actor_id"`
	ActorName string    `gorm:"size:64;not null" json:"actor_name"`
	CreatedAt time.Time `json:"created_at"`
}
