package department

import "github.com/frahmantamala/inventory-tracker/internal"

// CreateDepartmentDTO carries the department form fields.
type CreateDepartmentDTO struct {
	Name string
}

func (d CreateDepartmentDTO) Validate() error {
	if d.Name == "" {
		return internal.NewValidationError("name is required", internal.ErrCodeMissingField)
	}
	return nil
}

type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type DepartmentsResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Flash       string               `json:"flash,omitempty"`
}
