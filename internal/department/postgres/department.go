package postgres

import (
	"errors"
	"time"

	departmentDatamodel "github.com/frahmantamala/inventory-tracker/internal/core/datamodel/department"
	"gorm.io/gorm"
)

// DepartmentRepository implements the department.RepositoryAPI interface using GORM
type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) GetAll() ([]*departmentDatamodel.Department, error) {
	var departments []*departmentDatamodel.Department
	err := r.db.Order("name ASC").Find(&departments).Error
	return departments, err
}

func (r *DepartmentRepository) GetByName(name string) (*departmentDatamodel.Department, error) {
	var d departmentDatamodel.Department
	err := r.db.Where("name = ?", name).First(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *DepartmentRepository) Create(department *departmentDatamodel.Department) error {
	if department.CreatedAt.IsZero() {
		department.CreatedAt = time.Now().UTC()
	}
	return r.db.Create(department).Error
}
