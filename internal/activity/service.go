package activity

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/inventory-tracker/internal"
	activityDatamodel "github.com/frahmantamala/inventory-tracker/internal/core/datamodel/activity"
	itemDatamodel "github.com/frahmantamala/inventory-tracker/internal/core/datamodel/item"
)

type RepositoryAPI interface {
	GetAllOrdered() ([]*activityDatamodel.Activity, error)
	Create(activity *activityDatamodel.Activity) error
}

type ItemRepositoryAPI interface {
	GetByID(id int64) (*itemDatamodel.Item, error)
}

type Service struct {
	repo     RepositoryAPI
	itemRepo ItemRepositoryAPI
	now      func() time.Time
	logger   *slog.Logger
}

func NewService(repo RepositoryAPI, itemRepo ItemRepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		itemRepo: itemRepo,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger,
	}
}

// GetAllActivities returns the log, most recent first.
func (s *Service) GetAllActivities() ([]ActivityResponse, error) {
	dataActivities, err := s.repo.GetAllOrdered()
	if err != nil {
		s.logger.Error("failed to get activities from repository", "error", err)
		return nil, err
	}

	responses := make([]ActivityResponse, 0, len(dataActivities))
	for _, domainActivity := range FromDataModelSlice(dataActivities) {
		responses = append(responses, domainActivity.ToResponse())
	}

	s.logger.Info("retrieved activities", "count", len(responses))
	return responses, nil
}

// CreateActivity appends one log entry for the acting user. The timestamp is
// assigned here, never taken from the client, so listing order always
// reflects insertion order.
func (s *Service) CreateActivity(dto CreateActivityDTO, actorUserID int64) (*Activity, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetByID(dto.ParsedItemID())
	if err != nil {
		s.logger.Error("failed to look up item", "item_id", dto.ParsedItemID(), "error", err)
		return nil, err
	}
	if item == nil {
		return nil, internal.ErrItemNotFound
	}

	record := ToDataModel(&Activity{
		Description: dto.Description,
		ItemID:      item.ID,
		Quantity:    dto.ParsedQuantity(),
		UserID:      actorUserID,
		Timestamp:   s.now(),
	})

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create activity", "item_id", record.ItemID, "user_id", actorUserID, "error", err)
		return nil, err
	}

	s.logger.Info("created activity", "activity_id", record.ID, "item_id", record.ItemID, "user_id", actorUserID)
	return FromDataModel(record), nil
}
