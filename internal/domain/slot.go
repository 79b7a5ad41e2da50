package domain

import (
	"time"

	"github.com/m04kA/coaching-scheduler/pkg/types"
)

// SlotState explains why a slot is or is not bookable
type SlotState string

const (
	SlotOpen    SlotState = "open"
	SlotBlocked SlotState = "blocked" // admin block
	SlotBooked  SlotState = "booked"  // scheduled appointment
	SlotTooSoon SlotState = "too_soon"
)

// Slot is one half-hour start on a business day
type Slot struct {
	Label     types.SlotLabel
	StartTime time.Time
	State     SlotState
}

// IsBookable returns true if the slot can be selected
func (s *Slot) IsBookable() bool {
	return s.State == SlotOpen
}

// DayAvailability is the slot grid of one calendar day
type DayAvailability struct {
	Date  time.Time
	Slots []Slot
}

// OpenCount returns the number of bookable slots
func (d *DayAvailability) OpenCount() int {
	n := 0
	for i := range d.Slots {
		if d.Slots[i].IsBookable() {
			n++
		}
	}
	return n
}
