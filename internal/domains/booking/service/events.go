package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"atrium/infras/kafka"
	"atrium/internal/domains/booking/model"
	"atrium/shared/timeslot"
)

const (
	eventBookingCreated   = "booking.created"
	eventBookingConfirmed = "booking.confirmed"
	eventBookingCancelled = "booking.cancelled"
)

// bookingEvent is the payload published to the booking topic on every
// lifecycle change. Consumers (notification workers, reporting) key on the
// booking id.
type bookingEvent struct {
	Event       string `json:"event"`
	BookingID   string `json:"booking_id"`
	RoomID      string `json:"room_id"`
	RoomName    string `json:"room_name"`
	UserEmail   string `json:"user_email"`
	BookingDate string `json:"booking_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status"`
}

func eventNameForTransition(event model.Event) string {
	if event == model.EventConfirm {
		return eventBookingConfirmed
	}

	return eventBookingCancelled
}

func (s *serviceImpl) publishEvent(ctx context.Context, booking model.Booking, event string) {
	if s.events == nil {
		return
	}

	payload := bookingEvent{
		Event:       event,
		BookingID:   booking.ID,
		RoomID:      booking.RoomID,
		RoomName:    booking.RoomName,
		UserEmail:   booking.UserEmail,
		BookingDate: booking.BookingDate.Format(timeslot.DateLayout),
		StartTime:   booking.StartTime.Format("15:04"),
		EndTime:     booking.EndTime.Format("15:04"),
		Status:      string(booking.Status),
	}

	err := s.events.SendMessages(ctx, s.cfg.Kafka.BookingTopic, kafka.Message{
		Key:   booking.ID,
		Value: payload,
	})
	if err != nil {
		log.Error().Err(err).Str("event", event).Str("booking_id", booking.ID).Msg("failed to publish booking event")
	}
}
