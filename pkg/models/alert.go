package models

// AlertKind tells the dispatcher what kind of alert was raised
type AlertKind string

const (
	AlertItemStart AlertKind = "ItemStart" // An item must start cooking now
	AlertDone      AlertKind = "Done"      // The master clock reached zero
)

// Alert is emitted by the tick engine when a boundary is crossed
type Alert struct {
	Kind     AlertKind
	ItemID   ItemID // Empty for AlertDone
	ItemName string // Snapshot of the name at the time of the alert
	Clock    int    // Master clock value when the alert fired
}

// IsTerminal returns true for the alert that ends a countdown
func (a Alert) IsTerminal() bool {
	return a.Kind == AlertDone
}
