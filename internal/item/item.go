package item

import (
	itemDatamodel "github.com/frahmantamala/inventory-tracker/internal/core/datamodel/item"
)

// Item is read-only from the application's point of view: rows are seeded
// externally, the app only lists them for the activity form and validates
// references against them.
type Item struct {
	ID             int64
	Name           string
	Stock          int64
	DepartmentID   *int64
	DepartmentName string
}

func (i *Item) ToResponse() ItemResponse {
	return ItemResponse{
		ID:         i.ID,
		Name:       i.Name,
		Stock:      i.Stock,
		Department: i.DepartmentName,
	}
}

type ItemResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Stock      int64  `json:"stock"`
	Department string `json:"department,omitempty"`
}

func FromDataModel(i *itemDatamodel.Item) *Item {
	item := &Item{
		ID:           i.ID,
		Name:         i.Name,
		Stock:        i.Stock,
		DepartmentID: i.DepartmentID,
	}
	if i.Department != nil {
		item.DepartmentName = i.Department.Name
	}
	return item
}
