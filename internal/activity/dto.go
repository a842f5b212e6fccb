package activity

import (
	"strconv"
	"time"

	"github.com/frahmantamala/inventory-tracker/internal"
)

// CreateActivityDTO carries the activity form fields. ItemID and Quantity
// arrive as form strings and are parsed during validation.
type CreateActivityDTO struct {
	Description string
	ItemID      string
	Quantity    string

	itemID   int64
	quantity int64
}

// Validate parses the numeric form fields. A quantity that is not a valid
// integer is a validation error, not a store error.
func (d *CreateActivityDTO) Validate() error {
	if d.ItemID == "" {
		return internal.NewValidationError("item_id is required", internal.ErrCodeMissingField)
	}

	itemID, err := strconv.ParseInt(d.ItemID, 10, 64)
	if err != nil {
		return internal.NewValidationError("item_id must be a valid integer", internal.ErrCodeValidationFailed)
	}
	d.itemID = itemID

	quantity, err := strconv.ParseInt(d.Quantity, 10, 64)
	if err != nil {
		return internal.NewValidationError("quantity must be a valid integer", internal.ErrCodeInvalidQuantity)
	}
	d.quantity = quantity

	return nil
}

func (d *CreateActivityDTO) ParsedItemID() int64   { return d.itemID }
func (d *CreateActivityDTO) ParsedQuantity() int64 { return d.quantity }

type ActivityResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	ItemID      int64     `json:"item_id"`
	Item        string    `json:"item,omitempty"`
	Quantity    int64     `json:"quantity"`
	User        string    `json:"user,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type ActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Flash      string             `json:"flash,omitempty"`
}
