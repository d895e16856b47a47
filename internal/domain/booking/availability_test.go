package booking

import (
	"reflect"
	"testing"

	"github.com/bellebook/salon-scheduler/internal/models"
)

func uintPtr(v uint) *uint { return &v }

func block(stylistID *uint, times ...string) models.TimeBlock {
	tb := models.TimeBlock{StylistID: stylistID}
	tb.SetTimeList(times)
	return tb
}

func TestAvailableEntriesBucketsOfferedTimes(t *testing.T) {
	blocks := []models.TimeBlock{
		block(nil, "09:00", "13:30", "22:00"),
	}

	entries := AvailableEntries(blocks, nil)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	e := entries[0]
	if e.StylistID != nil {
		t.Errorf("stylist id = %v, want nil", *e.StylistID)
	}
	if !reflect.DeepEqual(e.Times, []string{"09:00", "13:30", "22:00"}) {
		t.Errorf("times = %v", e.Times)
	}
	if !reflect.DeepEqual(e.Buckets.Morning, []string{"09:00"}) {
		t.Errorf("morning = %v, want [09:00]", e.Buckets.Morning)
	}
	if !reflect.DeepEqual(e.Buckets.Afternoon, []string{"13:30"}) {
		t.Errorf("afternoon = %v, want [13:30]", e.Buckets.Afternoon)
	}
	if len(e.Buckets.Evening) != 0 {
		t.Errorf("evening = %v, want empty", e.Buckets.Evening)
	}
}

func TestAvailableEntriesSubtractsBookedTimes(t *testing.T) {
	blocks := []models.TimeBlock{
		block(nil, "09:00", "10:00", "11:00"),
	}

	appointments := []models.Appointment{
		{StylistID: nil, StartTime: "10:00", Status: "pending"},
		{StylistID: nil, StartTime: "11:00", Status: "canceled"},
	}

	entries := AvailableEntries(blocks, appointments)

	want := []string{"09:00", "11:00"}
	if !reflect.DeepEqual(entries[0].Times, want) {
		t.Fatalf("times = %v, want %v (canceled must not block)", entries[0].Times, want)
	}
}

func TestAvailableEntriesStylistLanes(t *testing.T) {
	blocks := []models.TimeBlock{
		block(uintPtr(1), "09:00", "10:00"),
		block(uintPtr(2), "09:00", "10:00"),
	}

	// stylist 1 is taken at 09:00, stylist 2 is untouched
	appointments := []models.Appointment{
		{StylistID: uintPtr(1), StartTime: "09:00", Status: "confirmed"},
	}

	entries := AvailableEntries(blocks, appointments)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	if !reflect.DeepEqual(entries[0].Times, []string{"10:00"}) {
		t.Errorf("stylist 1 times = %v, want [10:00]", entries[0].Times)
	}
	if !reflect.DeepEqual(entries[1].Times, []string{"09:00", "10:00"}) {
		t.Errorf("stylist 2 times = %v, want untouched", entries[1].Times)
	}
}

func TestSlotOffered(t *testing.T) {
	blocks := []models.TimeBlock{
		block(nil, "09:00"),
		block(uintPtr(3), "14:00"),
	}

	cases := []struct {
		name      string
		stylistID *uint
		time      string
		want      bool
	}{
		{"any stylist offered", nil, "09:00", true},
		{"any stylist wrong time", nil, "10:00", false},
		{"stylist offered", uintPtr(3), "14:00", true},
		{"stylist not offered at any-stylist time", uintPtr(3), "09:00", false},
		{"unknown stylist", uintPtr(9), "14:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SlotOffered(blocks, tc.stylistID, tc.time); got != tc.want {
				t.Fatalf("SlotOffered = %v, want %v", got, tc.want)
			}
		})
	}
}
