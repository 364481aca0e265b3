package services

import "testing"

func validBookingRequest() BookingRequest {
	return BookingRequest{
		ServiceID: "s1",
		BarberID:  "b1",
		Date:      "2025-03-10",
		Time:      "11:00",
		FirstName: "Jan",
		Phone:     "+48 123 456 789",
		Email:     "jan@example.com",
	}
}

func hasField(verr *ValidationError, field string) bool {
	for _, f := range verr.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func TestValidateBookingRequest_Valid(t *testing.T) {
	verr := ValidateBookingRequest(validBookingRequest(), testPolicy)
	if verr.HasErrors() {
		t.Fatalf("expected no violations, got %v", verr.Fields)
	}
}

func TestValidateBookingRequest_EmptyEmailAllowed(t *testing.T) {
	req := validBookingRequest()
	req.Email = ""
	if verr := ValidateBookingRequest(req, testPolicy); verr.HasErrors() {
		t.Fatalf("email is optional, got %v", verr.Fields)
	}
}

func TestValidateBookingRequest_CollectsEveryViolation(t *testing.T) {
	req := validBookingRequest()
	req.FirstName = ""
	req.Phone = "12345"
	verr := ValidateBookingRequest(req, testPolicy)

	if !hasField(verr, "firstName") {
		t.Errorf("expected firstName violation, got %v", verr.Fields)
	}
	if !hasField(verr, "phone") {
		t.Errorf("expected phone violation, got %v", verr.Fields)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("expected exactly 2 violations, got %v", verr.Fields)
	}
}

func TestValidateBookingRequest_BadDateFormat(t *testing.T) {
	for _, date := range []string{"10-03-2025", "2025/03/10", "2025-3-10", ""} {
		req := validBookingRequest()
		req.Date = date
		if verr := ValidateBookingRequest(req, testPolicy); !hasField(verr, "date") {
			t.Errorf("date %q: expected date violation, got %v", date, verr.Fields)
		}
	}
}

func TestValidateBookingRequest_TimeOffGrid(t *testing.T) {
	for _, tm := range []string{"11:30", "08:00", "18:00"} {
		req := validBookingRequest()
		req.Time = tm
		if verr := ValidateBookingRequest(req, testPolicy); !hasField(verr, "time") {
			t.Errorf("time %q: expected time violation, got %v", tm, verr.Fields)
		}
	}
}

func TestValidateBookingRequest_BadTimeFormat(t *testing.T) {
	req := validBookingRequest()
	req.Time = "9:00"
	verr := ValidateBookingRequest(req, testPolicy)
	if !hasField(verr, "time") {
		t.Fatalf("expected time violation, got %v", verr.Fields)
	}
}

func TestValidateBookingRequest_BadEmail(t *testing.T) {
	req := validBookingRequest()
	req.Email = "not-an-email"
	if verr := ValidateBookingRequest(req, testPolicy); !hasField(verr, "email") {
		t.Fatalf("expected email violation, got %v", verr.Fields)
	}
}

func TestValidateBookingRequest_PhoneCharset(t *testing.T) {
	req := validBookingRequest()
	req.Phone = "123456789a"
	if verr := ValidateBookingRequest(req, testPolicy); !hasField(verr, "phone") {
		t.Fatalf("expected phone violation, got %v", verr.Fields)
	}
}

func TestValidateContactRequest_Valid(t *testing.T) {
	req := ContactRequest{
		FirstName: "Jan",
		LastName:  "Kowalski",
		Email:     "jan@example.com",
		Phone:     "123456789",
		Message:   "Proszę o kontakt w sprawie wizyty.",
	}
	if verr := ValidateContactRequest(req); verr.HasErrors() {
		t.Fatalf("expected no violations, got %v", verr.Fields)
	}
}

func TestValidateContactRequest_ShortFields(t *testing.T) {
	req := ContactRequest{
		FirstName: "J",
		LastName:  "K",
		Email:     "zly-adres",
		Phone:     "123",
		Message:   "krótko",
	}
	verr := ValidateContactRequest(req)
	for _, field := range []string{"firstName", "lastName", "email", "phone", "message"} {
		if !hasField(verr, field) {
			t.Errorf("expected %s violation, got %v", field, verr.Fields)
		}
	}
}
