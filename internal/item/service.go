package item

import (
	"log/slog"

	itemDatamodel "github.com/frahmantamala/inventory-tracker/internal/core/datamodel/item"
)

type RepositoryAPI interface {
	GetAll() ([]*itemDatamodel.Item, error)
	GetByID(id int64) (*itemDatamodel.Item, error)
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

func (s *Service) GetAllItems() ([]ItemResponse, error) {
	dataItems, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get items from repository", "error", err)
		return nil, err
	}

	responses := make([]ItemResponse, 0, len(dataItems))
	for _, dataItem := range dataItems {
		responses = append(responses, FromDataModel(dataItem).ToResponse())
	}

	return responses, nil
}
