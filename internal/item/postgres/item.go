package postgres

import (
	"errors"

	itemDatamodel "github.com/frahmantamala/inventory-tracker/internal/core/datamodel/item"
	"gorm.io/gorm"
)

// ItemRepository implements the item.RepositoryAPI interface using GORM
type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) GetAll() ([]*itemDatamodel.Item, error) {
	var items []*itemDatamodel.Item
	err := r.db.Preload("Department").Order("name ASC").Find(&items).Error
	return items, err
}

func (r *ItemRepository) GetByID(id int64) (*itemDatamodel.Item, error) {
	var i itemDatamodel.Item
	err := r.db.Where("id = ?", id).First(&i).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}
