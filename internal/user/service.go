package user

import (
	"errors"
	"log/slog"

	"github.com/frahmantamala/inventory-tracker/internal"
	"github.com/frahmantamala/inventory-tracker/internal/auth"
	userDatamodel "github.com/frahmantamala/inventory-tracker/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type RepositoryAPI interface {
	GetAll() ([]*userDatamodel.User, error)
	GetByUsername(username string) (*userDatamodel.User, error)
	Create(user *userDatamodel.User) error
}

type Service struct {
	repo       RepositoryAPI
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, bcryptCost int, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// GetAllUsers lists accounts for the management page. Password hashes never
// leave this package.
func (s *Service) GetAllUsers() ([]UserResponse, error) {
	dataUsers, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get users from repository", "error", err)
		return nil, err
	}

	responses := make([]UserResponse, 0, len(dataUsers))
	for _, dataUser := range dataUsers {
		responses = append(responses, FromDataModel(dataUser).ToResponse())
	}

	s.logger.Info("retrieved users", "count", len(responses))
	return responses, nil
}

// CreateUser hashes the password and inserts the account. A username the
// store already holds surfaces as a conflict before the insert; a concurrent
// creator losing the race gets the same conflict from the unique index.
func (s *Service) CreateUser(dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByUsername(dto.Username)
	if err != nil {
		s.logger.Error("failed to check username", "username", dto.Username, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, internal.ErrDuplicateUsername
	}

	hash, err := auth.HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	record := ToDataModel(&User{
		Username:     dto.Username,
		PasswordHash: hash,
		Role:         dto.Role,
	})

	if err := s.repo.Create(record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.ErrDuplicateUsername
		}
		s.logger.Error("failed to create user", "username", dto.Username, "error", err)
		return nil, err
	}

	s.logger.Info("created user", "user_id", record.ID, "username", record.Username, "role", record.Role)
	return FromDataModel(record), nil
}
