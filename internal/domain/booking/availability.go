package booking

import (
	"github.com/bellebook/salon-scheduler/internal/models"
)

// sameLane reports whether an appointment's stylist occupies the same
// availability lane as a block's stylist. A nil stylist is its own
// "any stylist" lane.
func sameLane(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// AvailableEntries subtracts active appointments from the offered time
// blocks and buckets what remains. Block order is preserved.
func AvailableEntries(
	blocks []models.TimeBlock,
	appointments []models.Appointment,
) []Entry {

	entries := make([]Entry, 0, len(blocks))

	for _, block := range blocks {
		taken := make(map[string]struct{})
		for _, ap := range appointments {
			if Status(ap.Status) == StatusCanceled {
				continue
			}
			if sameLane(ap.StylistID, block.StylistID) {
				taken[ap.StartTime] = struct{}{}
			}
		}

		var free []string
		for _, hm := range block.TimeList() {
			if _, booked := taken[hm]; booked {
				continue
			}
			free = append(free, hm)
		}

		entry := Entry{
			StylistID: block.StylistID,
			Times:     free,
			Buckets:   BucketTimes(free),
		}
		if block.Stylist != nil {
			entry.StylistName = block.Stylist.Name
		}

		entries = append(entries, entry)
	}

	return entries
}

// SlotOffered reports whether a concrete (stylist, time) pair is offered
// by any of the date's blocks.
func SlotOffered(blocks []models.TimeBlock, stylistID *uint, startTime string) bool {
	for _, block := range blocks {
		if !sameLane(stylistID, block.StylistID) {
			continue
		}
		for _, hm := range block.TimeList() {
			if hm == startTime {
				return true
			}
		}
	}
	return false
}
