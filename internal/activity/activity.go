package activity

import (
	"time"

	activityDatamodel "github.com/frahmantamala/inventory-tracker/internal/core/datamodel/activity"
)

type Activity struct {
	ID          int64
	Description string
	ItemID      int64
	ItemName    string
	Quantity    int64
	UserID      int64
	Username    string
	Timestamp   time.Time
}

func (a *Activity) ToResponse() ActivityResponse {
	return ActivityResponse{
		ID:          a.ID,
		Description: a.Description,
		ItemID:      a.ItemID,
		Item:        a.ItemName,
		Quantity:    a.Quantity,
		User:        a.Username,
		Timestamp:   a.Timestamp,
	}
}

func ToDataModel(a *Activity) *activityDatamodel.Activity {
	return &activityDatamodel.Activity{
		ID:          a.ID,
		Description: a.Description,
		ItemID:      a.ItemID,
		Quantity:    a.Quantity,
		UserID:      a.UserID,
		Timestamp:   a.Timestamp,
	}
}

func FromDataModel(a *activityDatamodel.Activity) *Activity {
	act := &Activity{
		ID:          a.ID,
		Description: a.Description,
		ItemID:      a.ItemID,
		Quantity:    a.Quantity,
		UserID:      a.UserID,
		Timestamp:   a.Timestamp,
	}
	if a.Item != nil {
		act.ItemName = a.Item.Name
	}
	if a.User != nil {
		act.Username = a.User.Username
	}
	return act
}

func FromDataModelSlice(activities []*activityDatamodel.Activity) []*Activity {
	result := make([]*Activity, len(activities))
	for i, a := range activities {
		result[i] = FromDataModel(a)
	}
	return result
}
