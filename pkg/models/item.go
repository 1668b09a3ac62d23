package models

// ItemID is the stable opaque identifier of a scheduled item (UUID)
type ItemID string

// Item is a single cook task scheduled against the master clock.
// Its start point is not stored: it is always derived from the current
// clock value, see BeginIn.
type Item struct {
	ID              ItemID // Assigned once at creation, never reused
	Name            string // Display label, may repeat across items
	DurationSeconds int    // Cook time in seconds
	Seq             uint64 // Creation order, used to break sorting ties
}

// MaxMinutes is the longest cook time an item or the clock may be set to
const MaxMinutes = 100000

// MinutesToSeconds converts a whole-minute cook time to seconds
func MinutesToSeconds(minutes int) int {
	return minutes * 60
}

// BeginIn returns how many seconds remain on the clock before this item
// must start cooking. Zero or negative means it has already started.
func (i Item) BeginIn(clock int) int {
	return clock - i.DurationSeconds
}

// InProgressAt reports whether the item is cooking at the given clock value
func (i Item) InProgressAt(clock int) bool {
	return i.BeginIn(clock) <= 0
}
