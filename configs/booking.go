package configs

import (
	"os"
	"strconv"
)

// BookingPolicy describes the daily booking grid. The grid is the same for
// every barber and every date: slots every SlotMinutes from OpenHour:00 to
// CloseHour:00 inclusive.
type BookingPolicy struct {
	OpenHour    int
	CloseHour   int
	SlotMinutes int
}

// GetBookingPolicy reads the policy from the environment with the salon's
// defaults (09:00-17:00, hourly).
func GetBookingPolicy() BookingPolicy {
	return BookingPolicy{
		OpenHour:    envIntOr("BOOKING_OPEN_HOUR", 9),
		CloseHour:   envIntOr("BOOKING_CLOSE_HOUR", 17),
		SlotMinutes: envIntOr("BOOKING_SLOT_MINUTES", 60),
	}
}

// GetAppPort returns the HTTP listen port.
func GetAppPort() string {
	if v := os.Getenv("APP_PORT"); v != "" {
		return v
	}
	return "3000"
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
