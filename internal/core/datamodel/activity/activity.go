package activity

import (
	"time"

	itemDatamodel "github.com/frahmantamala/inventory-tracker/internal/core/datamodel/item"
	userDatamodel "github.com/frahmantamala/inventory-tracker/internal/core/datamodel/user"
)

// Activity is an append-only stock movement record. Rows are never updated
// or deleted once written.
type Activity struct {
	ID          int64     `gorm:"primaryKey"`
	Description string    `gorm:"column:description"`
	ItemID      int64     `gorm:"column:item_id;not null"`
	Quantity    int64     `gorm:"column:quantity;not null"`
	UserID      int64     `gorm:"column:user_id;not null"`
	Timestamp   time.Time `gorm:"column:timestamp;not null"`

	Item *itemDatamodel.Item `gorm:"foreignKey:ItemID"`
	User *userDatamodel.User `gorm:"foreignKey:UserID"`
}

func (Activity) TableName() string {
	return "activities"
}
