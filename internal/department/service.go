package department

import (
	"errors"
	"log/slog"

	"github.com/frahmantamala/inventory-tracker/internal"
	departmentDatamodel "github.com/frahmantamala/inventory-tracker/internal/core/datamodel/department"
	"gorm.io/gorm"
)

type RepositoryAPI interface {
	GetAll() ([]*departmentDatamodel.Department, error)
	GetByName(name string) (*departmentDatamodel.Department, error)
	Create(department *departmentDatamodel.Department) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAllDepartments() ([]DepartmentResponse, error) {
	dataDepartments, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get departments from repository", "error", err)
		return nil, err
	}

	responses := make([]DepartmentResponse, 0, len(dataDepartments))
	for _, dataDepartment := range dataDepartments {
		responses = append(responses, FromDataModel(dataDepartment).ToResponse())
	}

	s.logger.Info("retrieved departments", "count", len(responses))
	return responses, nil
}

// CreateDepartment inserts a department. An existing name surfaces as a
// conflict before the insert; the unique index resolves races between
// concurrent creators and gives the loser the same conflict.
func (s *Service) CreateDepartment(dto CreateDepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(dto.Name)
	if err != nil {
		s.logger.Error("failed to check department name", "name", dto.Name, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, internal.ErrDuplicateDepartment
	}

	record := ToDataModel(&Department{Name: dto.Name})
	if err := s.repo.Create(record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.ErrDuplicateDepartment
		}
		s.logger.Error("failed to create department", "name", dto.Name, "error", err)
		return nil, err
	}

	s.logger.Info("created department", "department_id", record.ID, "name", record.Name)
	return FromDataModel(record), nil
}
