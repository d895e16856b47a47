package booking

import (
	"context"
	"reflect"
	"testing"

	domain "github.com/bellebook/salon-scheduler/internal/domain/booking"
	"github.com/bellebook/salon-scheduler/internal/httperr"
)

func TestGetAvailability(t *testing.T) {
	repo := activeServiceRepo()
	uc := NewGetAvailability(repo)

	entries, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ServiceID: 1,
		Date:      "2026-09-01",
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if !reflect.DeepEqual(entries[0].Times, []string{"09:00", "13:30"}) {
		t.Errorf("times = %v", entries[0].Times)
	}
}

func TestGetAvailabilityInvalidDate(t *testing.T) {
	uc := NewGetAvailability(activeServiceRepo())

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ServiceID: 1,
		Date:      "01-09-2026",
	})
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("err = %v, want invalid_date", err)
	}
}

func TestGetAvailabilityUnknownService(t *testing.T) {
	uc := NewGetAvailability(activeServiceRepo())

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ServiceID: 99,
		Date:      "2026-09-01",
	})
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("err = %v, want service_not_found", err)
	}
}

func TestGetAvailabilityInactiveServiceIsEmpty(t *testing.T) {
	repo := activeServiceRepo()
	repo.services[1].Active = false
	uc := NewGetAvailability(repo)

	entries, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ServiceID: 1,
		Date:      "2026-09-01",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("got %d entries, want none", len(entries))
	}
}
