package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"atrium/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldCapacity    = "capacity"
	FieldImage       = "image"
	FieldAmenities   = "amenities"
	FieldActive      = "active"
)

// AmenityList is stored as a JSON-encoded text column, matching the wire
// representation the front end consumes.
type AmenityList []string

func (a AmenityList) Value() (driver.Value, error) {
	if a == nil {
		a = AmenityList{}
	}

	encoded, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to encode amenities: %w", err)
	}

	return string(encoded), nil
}

func (a *AmenityList) Scan(src any) error {
	if src == nil {
		*a = AmenityList{}

		return nil
	}

	var raw []byte

	switch value := src.(type) {
	case []byte:
		raw = value
	case string:
		raw = []byte(value)
	default:
		return fmt.Errorf("unsupported amenities column type %T", src)
	}

	if len(raw) == 0 {
		*a = AmenityList{}

		return nil
	}

	if err := json.Unmarshal(raw, a); err != nil {
		return fmt.Errorf("failed to decode amenities: %w", err)
	}

	return nil
}

type Room struct {
	ID          string      `db:"id"`
	Name        string      `db:"name"`
	Description string      `db:"description"`
	Capacity    int         `db:"capacity"`
	Image       string      `db:"image"`
	Amenities   AmenityList `db:"amenities"`
	Active      bool        `db:"active"`
	model.Metadata
}
