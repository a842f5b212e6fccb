package department

import (
	"time"

	departmentDatamodel "github.com/frahmantamala/inventory-tracker/internal/core/datamodel/department"
)

type Department struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

func (d *Department) ToResponse() DepartmentResponse {
	return DepartmentResponse{
		ID:   d.ID,
		Name: d.Name,
	}
}

func ToDataModel(d *Department) *departmentDatamodel.Department {
	return &departmentDatamodel.Department{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
	}
}

func FromDataModel(d *departmentDatamodel.Department) *Department {
	return &Department{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
	}
}
