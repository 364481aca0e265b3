package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"mkbarber.pl/models"
	"mkbarber.pl/repositories"
)

func testCatalog() *repositories.MemoryCatalogRepository {
	return repositories.NewMemoryCatalogRepository(
		[]models.Service{
			{BaseModel: models.BaseModel{ID: "s1"}, Name: "Klasyczne Strzyżenie", Price: 6000, DurationMinutes: 45},
		},
		[]models.Barber{
			{BaseModel: models.BaseModel{ID: "b1"}, Name: "Mikołaj Kowalski"},
			{BaseModel: models.BaseModel{ID: "b2"}, Name: "Adam Nowak"},
		},
	)
}

func newTestBookingService() (IBookingService, *repositories.MemoryAppointmentRepository) {
	repo := repositories.NewMemoryAppointmentRepository()
	return NewBookingServiceWith(repo, testCatalog(), testPolicy), repo
}

func TestCreateAppointment_Success(t *testing.T) {
	svc, _ := newTestBookingService()

	appt, err := svc.CreateAppointment(context.Background(), validBookingRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.ID == "" {
		t.Error("expected a generated id")
	}
	if appt.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}
	if appt.Status != models.AppointmentStatusConfirmed {
		t.Errorf("expected status confirmed, got %s", appt.Status)
	}
}

func TestCreateAppointment_StatusCannotBeSuppliedByClient(t *testing.T) {
	// The request body has no status field at all; whatever arrives, the
	// stored appointment is confirmed.
	svc, repo := newTestBookingService()

	appt, err := svc.CreateAppointment(context.Background(), validBookingRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored, err := repo.FindByID(context.Background(), appt.ID)
	if err != nil {
		t.Fatalf("stored appointment not found: %v", err)
	}
	if stored.Status != models.AppointmentStatusConfirmed {
		t.Errorf("expected stored status confirmed, got %s", stored.Status)
	}
}

func TestCreateAppointment_UnknownServiceRejected(t *testing.T) {
	svc, repo := newTestBookingService()

	req := validBookingRequest()
	req.ServiceID = "nie-ma"
	_, err := svc.CreateAppointment(context.Background(), req)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !hasField(verr, "serviceId") {
		t.Errorf("expected serviceId violation, got %v", verr.Fields)
	}

	all, _ := repo.FindAll(context.Background())
	if len(all) != 0 {
		t.Errorf("rejected booking must not touch the store, found %d rows", len(all))
	}
}

func TestCreateAppointment_UnknownBarberRejected(t *testing.T) {
	svc, _ := newTestBookingService()

	req := validBookingRequest()
	req.BarberID = "nie-ma"
	_, err := svc.CreateAppointment(context.Background(), req)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !hasField(verr, "barberId") {
		t.Errorf("expected barberId violation, got %v", verr.Fields)
	}
}

func TestCreateAppointment_SlotConflict(t *testing.T) {
	svc, repo := newTestBookingService()
	ctx := context.Background()

	if _, err := svc.CreateAppointment(ctx, validBookingRequest()); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	second := validBookingRequest()
	second.FirstName = "Piotr"
	if _, err := svc.CreateAppointment(ctx, second); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	all, _ := repo.FindAll(ctx)
	if len(all) != 1 {
		t.Errorf("conflicting booking must not add a row, found %d", len(all))
	}
}

func TestCreateAppointment_OtherBarberSameSlot(t *testing.T) {
	svc, _ := newTestBookingService()
	ctx := context.Background()

	if _, err := svc.CreateAppointment(ctx, validBookingRequest()); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	second := validBookingRequest()
	second.BarberID = "b2"
	if _, err := svc.CreateAppointment(ctx, second); err != nil {
		t.Fatalf("same slot with another barber should succeed, got %v", err)
	}
}

func TestCancelAppointment_FreesSlotOnce(t *testing.T) {
	svc, _ := newTestBookingService()
	ctx := context.Background()

	appt, err := svc.CreateAppointment(ctx, validBookingRequest())
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if err := svc.CancelAppointment(ctx, appt.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	// The slot is free again.
	if _, err := svc.CreateAppointment(ctx, validBookingRequest()); err != nil {
		t.Fatalf("rebooking a freed slot failed: %v", err)
	}

	// Cancelled is terminal: a second cancel of the same id is not-found.
	if err := svc.CancelAppointment(ctx, appt.ID); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound on second cancel, got %v", err)
	}
}

func TestCancelAppointment_UnknownID(t *testing.T) {
	svc, _ := newTestBookingService()
	if err := svc.CancelAppointment(context.Background(), "nie-ma"); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestGetAppointmentsByDate_SkipsCancelled(t *testing.T) {
	svc, _ := newTestBookingService()
	ctx := context.Background()

	first, err := svc.CreateAppointment(ctx, validBookingRequest())
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	second := validBookingRequest()
	second.Time = "13:00"
	if _, err := svc.CreateAppointment(ctx, second); err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if err := svc.CancelAppointment(ctx, first.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	byDate, err := svc.GetAppointmentsByDate(ctx, "2025-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byDate) != 1 || byDate[0].Time != "13:00" {
		t.Fatalf("expected only the 13:00 appointment, got %v", byDate)
	}

	// GetAppointments still returns both, cancelled included.
	all, err := svc.GetAppointments(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 appointments in the full listing, got %d", len(all))
	}
}

func TestCreateAppointment_ConcurrentSameSlot(t *testing.T) {
	svc, repo := newTestBookingService()
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateAppointment(ctx, validBookingRequest())
		}(i)
	}
	wg.Wait()

	var won int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrSlotTaken):
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if won != 1 {
		t.Fatalf("expected exactly one booking to win the slot, got %d", won)
	}
	all, _ := repo.FindAll(ctx)
	if len(all) != 1 {
		t.Fatalf("expected exactly one stored row, got %d", len(all))
	}
}

func TestBookingFlow_EndToEnd(t *testing.T) {
	svc, repo := newTestBookingService()
	availability := NewAvailabilityServiceWith(repo, testPolicy)
	ctx := context.Background()

	appt, err := svc.CreateAppointment(ctx, validBookingRequest())
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if appt.Status != models.AppointmentStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", appt.Status)
	}

	if _, err := svc.CreateAppointment(ctx, validBookingRequest()); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	slots, err := availability.GetDaySchedule(ctx, "b1", "2025-03-10")
	if err != nil {
		t.Fatalf("availability failed: %v", err)
	}
	for _, slot := range slots {
		switch slot.Time {
		case "11:00":
			if slot.Available {
				t.Error("11:00 should be taken")
			}
		case "09:00":
			if !slot.Available {
				t.Error("09:00 should be free")
			}
		}
	}

	if err := svc.CancelAppointment(ctx, appt.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	slots, err = availability.GetDaySchedule(ctx, "b1", "2025-03-10")
	if err != nil {
		t.Fatalf("availability failed: %v", err)
	}
	for _, slot := range slots {
		if slot.Time == "11:00" && !slot.Available {
			t.Error("11:00 should be free again after cancellation")
		}
	}
}
