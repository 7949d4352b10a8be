package model

import (
	"time"

	"atrium/shared/failure"
	"atrium/shared/model"
	"atrium/shared/timeslot"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldRoomName    = "room_name"
	FieldUserName    = "user_name"
	FieldUserEmail   = "user_email"
	FieldBookingDate = "booking_date"
	FieldStartTime   = "start_time"
	FieldEndTime     = "end_time"
	FieldPurpose     = "purpose"
	FieldAttendees   = "attendees"
	FieldStatus      = "status"
	FieldCreatedBy   = "created_by"
)

// Status is the persisted booking lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Event is a lifecycle transition request.
type Event string

const (
	EventConfirm Event = "confirm"
	EventCancel  Event = "cancel"
)

// Transition applies the lifecycle state machine. Pending bookings may be
// confirmed or cancelled, confirmed bookings may only be cancelled, and
// cancelled bookings are immutable.
func Transition(current Status, event Event) (Status, error) {
	switch current {
	case StatusPending:
		switch event {
		case EventConfirm:
			return StatusConfirmed, nil
		case EventCancel:
			return StatusCancelled, nil
		}
	case StatusConfirmed:
		if event == EventCancel {
			return StatusCancelled, nil
		}
	}

	return current, failure.Conflict("booking status is " + string(current) + ", cannot " + string(event)) // nolint:wrapcheck
}

type Booking struct {
	ID          string    `db:"id"`
	RoomID      string    `db:"room_id"`
	RoomName    string    `db:"room_name"`
	UserName    string    `db:"user_name"`
	UserEmail   string    `db:"user_email"`
	BookingDate time.Time `db:"booking_date"`
	StartTime   time.Time `db:"start_time"`
	EndTime     time.Time `db:"end_time"`
	Purpose     string    `db:"purpose"`
	Attendees   int       `db:"attendees"`
	Status      Status    `db:"status"`
	model.Metadata
}

// Interval returns the booking's occupied time range.
func (b *Booking) Interval() (timeslot.Interval, error) {
	return timeslot.FromTimes(b.StartTime, b.EndTime)
}
