package services

import (
	"context"
	"testing"

	"mkbarber.pl/configs"
	"mkbarber.pl/models"
	"mkbarber.pl/repositories"
)

var testPolicy = configs.BookingPolicy{OpenHour: 9, CloseHour: 17, SlotMinutes: 60}

func TestBuildSlotGrid_DefaultPolicy(t *testing.T) {
	grid := BuildSlotGrid(testPolicy)
	if len(grid) != 9 {
		t.Fatalf("expected 9 slots, got %d", len(grid))
	}
	if grid[0] != "09:00" {
		t.Errorf("expected first slot 09:00, got %s", grid[0])
	}
	if grid[len(grid)-1] != "17:00" {
		t.Errorf("expected last slot 17:00, got %s", grid[len(grid)-1])
	}
	for i := 1; i < len(grid); i++ {
		if grid[i-1] >= grid[i] {
			t.Fatalf("grid not ascending at %d: %s >= %s", i, grid[i-1], grid[i])
		}
	}
}

func TestBuildSlotGrid_HalfHourSlots(t *testing.T) {
	grid := BuildSlotGrid(configs.BookingPolicy{OpenHour: 10, CloseHour: 12, SlotMinutes: 30})
	want := []string{"10:00", "10:30", "11:00", "11:30", "12:00"}
	if len(grid) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(grid))
	}
	for i := range want {
		if grid[i] != want[i] {
			t.Errorf("slot %d: expected %s, got %s", i, want[i], grid[i])
		}
	}
}

func TestBuildSlotGrid_InvalidPolicy(t *testing.T) {
	if grid := BuildSlotGrid(configs.BookingPolicy{OpenHour: 17, CloseHour: 9, SlotMinutes: 60}); grid != nil {
		t.Fatalf("expected nil grid for inverted hours, got %v", grid)
	}
	if grid := BuildSlotGrid(configs.BookingPolicy{OpenHour: 9, CloseHour: 17, SlotMinutes: 0}); grid != nil {
		t.Fatalf("expected nil grid for zero slot width, got %v", grid)
	}
}

func TestGetDaySchedule_EmptyStore(t *testing.T) {
	repo := repositories.NewMemoryAppointmentRepository()
	svc := NewAvailabilityServiceWith(repo, testPolicy)

	slots, err := svc.GetDaySchedule(context.Background(), "b1", "2025-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 9 {
		t.Fatalf("expected 9 slots, got %d", len(slots))
	}
	for _, slot := range slots {
		if !slot.Available {
			t.Errorf("expected %s available on empty store", slot.Time)
		}
	}
}

func TestGetDaySchedule_MarksBookedSlot(t *testing.T) {
	repo := repositories.NewMemoryAppointmentRepository()
	svc := NewAvailabilityServiceWith(repo, testPolicy)
	ctx := context.Background()

	appt := &models.Appointment{
		ServiceID: "s1", BarberID: "b1", Date: "2025-03-10", Time: "11:00",
		FirstName: "Jan", Phone: "+48123456789",
		Status: models.AppointmentStatusConfirmed,
	}
	if err := repo.Create(ctx, appt); err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	slots, err := svc.GetDaySchedule(ctx, "b1", "2025-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, slot := range slots {
		wantAvailable := slot.Time != "11:00"
		if slot.Available != wantAvailable {
			t.Errorf("slot %s: expected available=%v, got %v", slot.Time, wantAvailable, slot.Available)
		}
	}
}

func TestGetDaySchedule_CancelledAppointmentFreesSlot(t *testing.T) {
	repo := repositories.NewMemoryAppointmentRepository()
	svc := NewAvailabilityServiceWith(repo, testPolicy)
	ctx := context.Background()

	appt := &models.Appointment{
		ServiceID: "s1", BarberID: "b1", Date: "2025-03-10", Time: "11:00",
		FirstName: "Jan", Phone: "+48123456789",
		Status: models.AppointmentStatusConfirmed,
	}
	if err := repo.Create(ctx, appt); err != nil {
		t.Fatalf("seed create failed: %v", err)
	}
	if ok, err := repo.Cancel(ctx, appt.ID); err != nil || !ok {
		t.Fatalf("cancel failed: ok=%v err=%v", ok, err)
	}

	slots, err := svc.GetDaySchedule(ctx, "b1", "2025-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, slot := range slots {
		if !slot.Available {
			t.Errorf("slot %s should be free after cancellation", slot.Time)
		}
	}
}

func TestGetDaySchedule_OtherBarberUnaffected(t *testing.T) {
	repo := repositories.NewMemoryAppointmentRepository()
	svc := NewAvailabilityServiceWith(repo, testPolicy)
	ctx := context.Background()

	appt := &models.Appointment{
		ServiceID: "s1", BarberID: "b1", Date: "2025-03-10", Time: "11:00",
		FirstName: "Jan", Phone: "+48123456789",
		Status: models.AppointmentStatusConfirmed,
	}
	if err := repo.Create(ctx, appt); err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	slots, err := svc.GetDaySchedule(ctx, "b2", "2025-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, slot := range slots {
		if !slot.Available {
			t.Errorf("barber b2 slot %s should be unaffected by b1's booking", slot.Time)
		}
	}
}

func TestGetDaySchedule_UnknownBarberReturnsFullGrid(t *testing.T) {
	// The engine is identity-agnostic; barber existence is checked at the
	// API layer before it is consulted.
	repo := repositories.NewMemoryAppointmentRepository()
	svc := NewAvailabilityServiceWith(repo, testPolicy)

	slots, err := svc.GetDaySchedule(context.Background(), "nobody", "2025-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 9 {
		t.Fatalf("expected full grid for unknown barber, got %d slots", len(slots))
	}
}
