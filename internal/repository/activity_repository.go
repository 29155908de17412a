package repository

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gopherfeed/internal/model"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(activity *model.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	if err := r.db.Create(activity).Error; err != nil {
		return fmt.Errorf("create activity failed: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListByPostID(postID string) ([]model.Activity, error) {
	var activities []model.Activity
	if err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("list activities failed: %w", err)
	}
	return activities, nil
}
