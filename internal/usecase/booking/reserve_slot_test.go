package booking

import (
	"context"
	"testing"

	domain "github.com/bellebook/salon-scheduler/internal/domain/booking"
	"github.com/bellebook/salon-scheduler/internal/httperr"
	"github.com/bellebook/salon-scheduler/internal/models"
)

func slotInput() domain.SlotInput {
	return domain.SlotInput{
		UserID:    7,
		ServiceID: 1,
		Date:      "2026-09-01",
		StartTime: "09:00",
	}
}

func TestReserveSlot(t *testing.T) {
	holds := newFakeHolds()
	uc := NewReserveSlot(activeServiceRepo(), holds)

	hold, err := uc.Execute(context.Background(), slotInput())
	if err != nil {
		t.Fatal(err)
	}

	if hold.ID == "" {
		t.Error("hold id is empty")
	}
	if hold.UserID != 7 || hold.StartTime != "09:00" {
		t.Errorf("hold = %+v", hold)
	}
	if len(holds.puts) != 1 {
		t.Fatalf("store received %d holds, want 1", len(holds.puts))
	}
}

func TestReserveSlotValidation(t *testing.T) {
	uc := NewReserveSlot(activeServiceRepo(), newFakeHolds())

	cases := []struct {
		name   string
		mutate func(*domain.SlotInput)
		code   string
	}{
		{"bad date", func(in *domain.SlotInput) { in.Date = "2026/09/01" }, "invalid_date"},
		{"short date", func(in *domain.SlotInput) { in.Date = "2026-9-1" }, "invalid_date"},
		{"bad time", func(in *domain.SlotInput) { in.StartTime = "morning" }, "invalid_time"},
		{"unpadded time", func(in *domain.SlotInput) { in.StartTime = "9:00" }, "invalid_time"},
		{"unoffered time", func(in *domain.SlotInput) { in.StartTime = "10:00" }, "slot_not_offered"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := slotInput()
			tc.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("err = %v, want %s", err, tc.code)
			}
		})
	}
}

func TestReserveSlotAlreadyBooked(t *testing.T) {
	repo := activeServiceRepo()
	repo.appointments = []models.Appointment{
		{ServiceID: 1, Date: "2026-09-01", StartTime: "09:00", Status: "pending"},
	}
	uc := NewReserveSlot(repo, newFakeHolds())

	_, err := uc.Execute(context.Background(), slotInput())
	if !httperr.IsBusiness(err, "slot_already_booked") {
		t.Fatalf("err = %v, want slot_already_booked", err)
	}
}

func TestReserveSlotHeldByAnotherUser(t *testing.T) {
	holds := newFakeHolds()
	uc := NewReserveSlot(activeServiceRepo(), holds)

	if _, err := uc.Execute(context.Background(), slotInput()); err != nil {
		t.Fatal(err)
	}

	rival := slotInput()
	rival.UserID = 8
	_, err := uc.Execute(context.Background(), rival)
	if !httperr.IsBusiness(err, "slot_on_hold") {
		t.Fatalf("err = %v, want slot_on_hold", err)
	}
}
