package timeslot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"atrium/shared/timeslot"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		end     int
		wantErr bool
	}{
		{name: "valid interval", start: 540, end: 600},
		{name: "start equals end", start: 540, end: 540, wantErr: true},
		{name: "start after end", start: 600, end: 540, wantErr: true},
		{name: "negative start", start: -10, end: 60, wantErr: true},
		{name: "end past midnight", start: 540, end: 1500, wantErr: true},
		{name: "full day", start: 0, end: 1440},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval, err := timeslot.New(tt.start, tt.end)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.start, interval.Start)
				assert.Equal(t, tt.end, interval.End)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantStart int
		wantEnd   int
		wantErr   bool
	}{
		{name: "morning slot", start: "09:00", end: "10:00", wantStart: 540, wantEnd: 600},
		{name: "half hour", start: "09:30", end: "10:30", wantStart: 570, wantEnd: 630},
		{name: "reversed", start: "11:00", end: "10:00", wantErr: true},
		{name: "garbage start", start: "morning", end: "10:00", wantErr: true},
		{name: "missing minutes", start: "9", end: "10:00", wantErr: true},
		{name: "empty", start: "", end: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval, err := timeslot.Parse(tt.start, tt.end)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStart, interval.Start)
			assert.Equal(t, tt.wantEnd, interval.End)
		})
	}
}

func TestIntervalOverlaps(t *testing.T) {
	mustParse := func(start, end string) timeslot.Interval {
		interval, err := timeslot.Parse(start, end)
		assert.NoError(t, err)

		return interval
	}

	tests := []struct {
		name string
		a    timeslot.Interval
		b    timeslot.Interval
		want bool
	}{
		{
			name: "identical intervals",
			a:    mustParse("09:00", "10:00"),
			b:    mustParse("09:00", "10:00"),
			want: true,
		},
		{
			name: "partial overlap",
			a:    mustParse("09:00", "10:30"),
			b:    mustParse("10:00", "11:00"),
			want: true,
		},
		{
			name: "contained interval",
			a:    mustParse("09:00", "12:00"),
			b:    mustParse("10:00", "11:00"),
			want: true,
		},
		{
			name: "touching boundaries do not overlap",
			a:    mustParse("09:00", "10:00"),
			b:    mustParse("10:00", "11:00"),
			want: false,
		},
		{
			name: "disjoint intervals",
			a:    mustParse("08:00", "09:00"),
			b:    mustParse("14:00", "15:00"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestIntervalClock(t *testing.T) {
	interval, err := timeslot.Parse("09:30", "17:45")
	assert.NoError(t, err)

	assert.Equal(t, "09:30", interval.StartClock())
	assert.Equal(t, "17:45", interval.EndClock())
	assert.Equal(t, "[09:30, 17:45)", interval.String())
}

func TestGridSlots(t *testing.T) {
	tests := []struct {
		name        string
		grid        timeslot.Grid
		wantCount   int
		wantFirst   string
		wantLast    string
		checkBounds bool
	}{
		{
			name:        "default business hours",
			grid:        timeslot.DefaultGrid(),
			wantCount:   10,
			wantFirst:   "08:00",
			wantLast:    "17:00",
			checkBounds: true,
		},
		{
			name:        "half hour slots",
			grid:        timeslot.NewGrid(9, 12, 30),
			wantCount:   6,
			wantFirst:   "09:00",
			wantLast:    "11:30",
			checkBounds: true,
		},
		{
			name:      "slot not fitting the tail is dropped",
			grid:      timeslot.NewGrid(9, 11, 45),
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := tt.grid.Slots()

			assert.Len(t, slots, tt.wantCount)

			if tt.checkBounds {
				assert.Equal(t, tt.wantFirst, slots[0].StartClock())
				assert.Equal(t, tt.wantLast, slots[len(slots)-1].StartClock())
			}
		})
	}
}

func TestNewGridFallsBackToDefault(t *testing.T) {
	tests := []struct {
		name        string
		start       int
		end         int
		slotMinutes int
	}{
		{name: "zero values", start: 0, end: 0, slotMinutes: 0},
		{name: "inverted hours", start: 18, end: 8, slotMinutes: 60},
		{name: "negative slot size", start: 8, end: 18, slotMinutes: -30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := timeslot.NewGrid(tt.start, tt.end, tt.slotMinutes)

			assert.Equal(t, timeslot.DefaultGrid(), grid)
		})
	}
}
