package booking

// AvailabilityInput identifies the slot listing being asked for.
type AvailabilityInput struct {
	ServiceID uint
	Date      string // "2006-01-02"
}

// Entry is the canonical per-stylist availability record. Both wire
// shapes of a time block normalize into this before anything else
// touches the data.
type Entry struct {
	StylistID   *uint    `json:"stylist_id"`
	StylistName string   `json:"stylist_name,omitempty"`
	Times       []string `json:"times"`
	Buckets     Buckets  `json:"buckets"`
}

// SlotInput is one concrete slot a user wants to hold or book.
type SlotInput struct {
	UserID    uint
	ServiceID uint
	StylistID *uint
	Date      string // "2006-01-02"
	StartTime string // "15:04"
}
