package timeslot

const (
	DefaultGridStartHour   = 8
	DefaultGridEndHour     = 18
	DefaultGridSlotMinutes = 60
)

// Grid is the facility-wide set of bookable slot boundaries. It carries no
// mutable state; Slots is a pure function of the configuration.
type Grid struct {
	StartHour   int
	EndHour     int
	SlotMinutes int
}

// DefaultGrid returns the facility default of hourly slots between 08:00 and
// 18:00.
func DefaultGrid() Grid {
	return Grid{
		StartHour:   DefaultGridStartHour,
		EndHour:     DefaultGridEndHour,
		SlotMinutes: DefaultGridSlotMinutes,
	}
}

// NewGrid builds a Grid, falling back to defaults for unusable values.
func NewGrid(startHour, endHour, slotMinutes int) Grid {
	grid := Grid{
		StartHour:   startHour,
		EndHour:     endHour,
		SlotMinutes: slotMinutes,
	}

	if grid.SlotMinutes <= 0 || grid.StartHour < 0 || grid.EndHour <= grid.StartHour || grid.EndHour > 24 {
		return DefaultGrid()
	}

	return grid
}

// Slots enumerates the grid's slots in order. Slots that would run past the
// grid's end boundary are dropped.
func (g Grid) Slots() []Interval {
	start := g.StartHour * minutesPerHour
	end := g.EndHour * minutesPerHour

	slots := []Interval{}
	for mark := start; mark+g.SlotMinutes <= end; mark += g.SlotMinutes {
		slots = append(slots, Interval{Start: mark, End: mark + g.SlotMinutes})
	}

	return slots
}
