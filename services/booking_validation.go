package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"mkbarber.pl/configs"
)

// FieldError names one violated input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated field of a request, not just the
// first one, so the client can mark the whole form at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "nieprawidłowe dane: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any field was violated.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe  = regexp.MustCompile(`^\d{2}:\d{2}$`)
	phoneRe = regexp.MustCompile(`^[0-9+\-() ]+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// BookingRequest is the booking form body as submitted by the client.
type BookingRequest struct {
	ServiceID string `json:"serviceId"`
	BarberID  string `json:"barberId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	FirstName string `json:"firstName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// ValidateBookingRequest checks the structural fields of a booking request
// against the policy grid. Reference existence (service, barber) is checked
// by the booking service, which appends to the same ValidationError.
func ValidateBookingRequest(req BookingRequest, policy configs.BookingPolicy) *ValidationError {
	verr := &ValidationError{}

	if req.ServiceID == "" {
		verr.add("serviceId", "usługa jest wymagana")
	}
	if req.BarberID == "" {
		verr.add("barberId", "fryzjer jest wymagany")
	}

	if !dateRe.MatchString(req.Date) {
		verr.add("date", "data musi być w formacie RRRR-MM-DD")
	}

	switch {
	case !timeRe.MatchString(req.Time):
		verr.add("time", "godzina musi być w formacie GG:MM")
	case !slotOnGrid(req.Time, policy):
		verr.add("time", "godzina jest poza godzinami otwarcia salonu")
	}

	if utf8.RuneCountInString(strings.TrimSpace(req.FirstName)) < 2 {
		verr.add("firstName", "imię musi mieć przynajmniej 2 znaki")
	}
	if utf8.RuneCountInString(req.Phone) < 9 || !phoneRe.MatchString(req.Phone) {
		verr.add("phone", "numer telefonu musi mieć przynajmniej 9 cyfr")
	}
	if req.Email != "" && !emailRe.MatchString(req.Email) {
		verr.add("email", "nieprawidłowy adres email")
	}

	return verr
}

// ContactRequest is the contact form body.
type ContactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

// ValidateContactRequest mirrors the booking validator for the contact form.
func ValidateContactRequest(req ContactRequest) *ValidationError {
	verr := &ValidationError{}

	if utf8.RuneCountInString(strings.TrimSpace(req.FirstName)) < 2 {
		verr.add("firstName", "imię musi mieć przynajmniej 2 znaki")
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.LastName)) < 2 {
		verr.add("lastName", "nazwisko musi mieć przynajmniej 2 znaki")
	}
	if !emailRe.MatchString(req.Email) {
		verr.add("email", "nieprawidłowy adres email")
	}
	if utf8.RuneCountInString(req.Phone) < 9 || !phoneRe.MatchString(req.Phone) {
		verr.add("phone", "numer telefonu musi mieć przynajmniej 9 cyfr")
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.Message)) < 10 {
		verr.add("message", "wiadomość musi mieć przynajmniej 10 znaków")
	}

	return verr
}

func slotOnGrid(t string, policy configs.BookingPolicy) bool {
	for _, slot := range BuildSlotGrid(policy) {
		if slot == t {
			return true
		}
	}
	return false
}
