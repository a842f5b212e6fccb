package item

import (
	departmentDatamodel "github.com/frahmantamala/inventory-tracker/internal/core/datamodel/department"
)

type Item struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"column:name;not null"`
	DepartmentID *int64 `gorm:"column:department_id"`
	Stock        int64  `gorm:"column:stock;default:0"`

	Department *departmentDatamodel.Department `gorm:"foreignKey:DepartmentID"`
}

func (Item) TableName() string {
	return "items"
}
