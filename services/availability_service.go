package services

import (
	"context"
	"fmt"

	"mkbarber.pl/configs"
	"mkbarber.pl/configs/configslog"
	"mkbarber.pl/repositories"

	"go.uber.org/zap"
)

// TimeSlot is one cell of the daily booking grid.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// BuildSlotGrid returns the canonical daily grid for the policy: slot start
// times from OpenHour:00 to CloseHour:00 inclusive, every SlotMinutes,
// ascending. The grid does not depend on the date or the barber.
func BuildSlotGrid(policy configs.BookingPolicy) []string {
	if policy.SlotMinutes <= 0 || policy.CloseHour < policy.OpenHour {
		return nil
	}
	var grid []string
	for m := policy.OpenHour * 60; m <= policy.CloseHour*60; m += policy.SlotMinutes {
		grid = append(grid, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return grid
}

// IAvailabilityService computes bookable slots per barber and date.
type IAvailabilityService interface {
	GetDaySchedule(ctx context.Context, barberID, date string) ([]TimeSlot, error)
}

// AvailabilityService derives availability from the appointment store. It is
// identity-agnostic: an unknown barber id simply yields the full free grid,
// callers validate barber existence before trusting the answer.
type AvailabilityService struct {
	repo   repositories.IAppointmentRepository
	policy configs.BookingPolicy
}

// NewAvailabilityService wires the configured backend and policy.
func NewAvailabilityService() IAvailabilityService {
	return &AvailabilityService{
		repo:   repositories.NewAppointmentRepository(),
		policy: configs.GetBookingPolicy(),
	}
}

// NewAvailabilityServiceWith injects dependencies, for tests and composed
// services.
func NewAvailabilityServiceWith(repo repositories.IAppointmentRepository, policy configs.BookingPolicy) IAvailabilityService {
	return &AvailabilityService{repo: repo, policy: policy}
}

// GetDaySchedule marks each grid slot unavailable when a confirmed
// appointment's time equals it exactly.
func (s *AvailabilityService) GetDaySchedule(ctx context.Context, barberID, date string) ([]TimeSlot, error) {
	booked, err := s.repo.FindByBarberAndDate(ctx, barberID, date)
	if err != nil {
		configslog.Log.Error("AvailabilityService.GetDaySchedule: store read failed",
			zap.String("barber_id", barberID), zap.String("date", date), zap.Error(err))
		return nil, err
	}

	taken := make(map[string]bool, len(booked))
	for _, appt := range booked {
		taken[appt.Time] = true
	}

	grid := BuildSlotGrid(s.policy)
	slots := make([]TimeSlot, 0, len(grid))
	for _, t := range grid {
		slots = append(slots, TimeSlot{Time: t, Available: !taken[t]})
	}
	return slots, nil
}

var _ IAvailabilityService = (*AvailabilityService)(nil)
