package model

import "time"

// LedgerStatus is the technical dispatch state of an event.
type LedgerStatus string

const (
	LedgerDispatched LedgerStatus = "dispatched"
	LedgerProcessed  LedgerStatus = "processed"
	LedgerSkipped    LedgerStatus = "skipped"
)

// ParseLedgerStatus maps a stored value to a status. Older writers stored "delivered" for processed.
func ParseLedgerStatus(s string) (LedgerStatus, bool) {
	switch s {
	case string(LedgerDispatched):
		return LedgerDispatched, true
	case string(LedgerProcessed), "delivered":
		return LedgerProcessed, true
	case string(LedgerSkipped):
		return LedgerSkipped, true
	default:
		return "", false
	}
}

// Channel names a delivery path.
type Channel string

const (
	ChannelLive Channel = "live"
	ChannelPush Channel = "push"
)

// LedgerEntry is the short-lived record of an event's dispatch state.
// It never answers whether a notification was delivered or read.
type LedgerEntry struct {
	EventID   string
	Status    LedgerStatus
	Channel   Channel
	Reason    string
	UpdatedAt time.Time
}

// DeliveryStatus is the domain delivery state of a message, as recorded by the relational store.
type DeliveryStatus struct {
	Delivered bool `json:"delivered"`
	Read      bool `json:"read"`
}
