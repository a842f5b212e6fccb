package postgres

import (
	activityDatamodel "github.com/frahmantamala/inventory-tracker/internal/core/datamodel/activity"
	"gorm.io/gorm"
)

// ActivityRepository implements the activity.RepositoryAPI interface using GORM
type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// GetAllOrdered returns activities newest first. Ties on timestamp fall back
// to id so entries inserted in the same instant keep insertion order.
func (r *ActivityRepository) GetAllOrdered() ([]*activityDatamodel.Activity, error) {
	var activities []*activityDatamodel.Activity
	err := r.db.Preload("Item").Preload("User").
		Order("timestamp DESC").
		Order("id DESC").
		Find(&activities).Error
	return activities, err
}

func (r *ActivityRepository) Create(activity *activityDatamodel.Activity) error {
	return r.db.Create(activity).Error
}
