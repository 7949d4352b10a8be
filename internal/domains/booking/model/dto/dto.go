package dto

import (
	"time"

	"github.com/google/uuid"

	"atrium/internal/domains/booking/model"
	"atrium/shared"
	gDto "atrium/shared/dto"
	gModel "atrium/shared/model"
	"atrium/shared/timeslot"
	"atrium/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID      string `json:"room_id"      validate:"required"`
	UserName    string `json:"user_name"    validate:"required,max=100"`
	UserEmail   string `json:"user_email"   validate:"required,email,max=100"`
	BookingDate string `json:"booking_date" validate:"required"`
	StartTime   string `json:"start_time"   validate:"required"`
	EndTime     string `json:"end_time"     validate:"required"`
	Purpose     string `json:"purpose"      validate:"required,max=500"`
	Attendees   int    `json:"attendees"    validate:"required,min=1"`
}

// Interval parses and validates the requested time range.
func (c *CreateBookingRequest) Interval() (timeslot.Interval, error) {
	return timeslot.Parse(c.StartTime, c.EndTime)
}

// ToModel builds a pending Booking. The room name snapshot is captured here so
// that the booking stays displayable after room deletion or rename.
func (c *CreateBookingRequest) ToModel(user, roomName string) (model.Booking, error) {
	bookingDate, err := time.Parse(timeslot.DateLayout, c.BookingDate)
	if err != nil {
		return model.Booking{}, err
	}

	startTime, err := time.Parse("15:04", c.StartTime)
	if err != nil {
		return model.Booking{}, err
	}

	endTime, err := time.Parse("15:04", c.EndTime)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:          uuid.NewString(),
		RoomID:      c.RoomID,
		RoomName:    roomName,
		UserName:    c.UserName,
		UserEmail:   c.UserEmail,
		BookingDate: bookingDate,
		StartTime:   startTime,
		EndTime:     endTime,
		Purpose:     c.Purpose,
		Attendees:   c.Attendees,
		Status:      model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type BookingResponse struct {
	ID          string `json:"id"`
	RoomID      string `json:"room_id"`
	RoomName    string `json:"room_name"`
	UserName    string `json:"user_name"`
	UserEmail   string `json:"user_email"`
	BookingDate string `json:"booking_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Purpose     string `json:"purpose"`
	Attendees   int    `json:"attendees"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.RoomName = model.RoomName
	r.UserName = model.UserName
	r.UserEmail = model.UserEmail
	r.BookingDate = model.BookingDate.Format(timeslot.DateLayout)
	r.StartTime = model.StartTime.Format("15:04")
	r.EndTime = model.EndTime.Format("15:04")
	r.Purpose = model.Purpose
	r.Attendees = model.Attendees
	r.Status = string(model.Status)
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type SlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (s *SlotResponse) FromInterval(interval timeslot.Interval) {
	s.StartTime = interval.StartClock()
	s.EndTime = interval.EndClock()
}

type GetSlotsResponse struct {
	RoomID      string         `json:"room_id"`
	BookingDate string         `json:"booking_date"`
	Slots       []SlotResponse `json:"slots"`
}

func (r *GetSlotsResponse) FromIntervals(roomID, date string, intervals []timeslot.Interval) {
	r.RoomID = roomID
	r.BookingDate = date

	r.Slots = make([]SlotResponse, len(intervals))
	for i, interval := range intervals {
		r.Slots[i].FromInterval(interval)
	}
}
