package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"atrium/internal/domains/booking/model"
	"atrium/shared/failure"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		current model.Status
		event   model.Event
		want    model.Status
		wantErr bool
	}{
		{name: "confirm pending", current: model.StatusPending, event: model.EventConfirm, want: model.StatusConfirmed},
		{name: "cancel pending", current: model.StatusPending, event: model.EventCancel, want: model.StatusCancelled},
		{name: "cancel confirmed", current: model.StatusConfirmed, event: model.EventCancel, want: model.StatusCancelled},
		{name: "confirm confirmed", current: model.StatusConfirmed, event: model.EventConfirm, wantErr: true},
		{name: "confirm cancelled", current: model.StatusCancelled, event: model.EventConfirm, wantErr: true},
		{name: "cancel cancelled", current: model.StatusCancelled, event: model.EventCancel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := model.Transition(tt.current, tt.event)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.current, next)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, next)
		})
	}
}

func TestTransitionConflictCode(t *testing.T) {
	_, err := model.Transition(model.StatusCancelled, model.EventConfirm)

	assert.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
}

func TestBookingInterval(t *testing.T) {
	booking := model.Booking{
		StartTime: time.Date(0, time.January, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, time.January, 1, 10, 30, 0, 0, time.UTC),
	}

	interval, err := booking.Interval()

	assert.NoError(t, err)
	assert.Equal(t, 540, interval.Start)
	assert.Equal(t, 630, interval.End)
}
