package models

const (
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
)

// Appointment is a booked slot. A confirmed appointment occupies exactly one
// (barber, date, time) cell; cancellation is a soft delete, the record stays
// for history. Exclusivity of confirmed appointments per cell is enforced by
// the repository (locked check-then-insert plus a partial unique index).
type Appointment struct {
	BaseModel
	ServiceID string `gorm:"type:varchar(36);not null;index" json:"serviceId"`
	BarberID  string `gorm:"type:varchar(36);not null;index:idx_appointments_barber_date,priority:1" json:"barberId"`
	// Date as YYYY-MM-DD, Time as HH:MM, both in the salon's local zone.
	Date      string `gorm:"type:varchar(10);not null;index:idx_appointments_barber_date,priority:2" json:"date"`
	Time      string `gorm:"type:varchar(5);not null" json:"time"`
	FirstName string `gorm:"type:varchar(100);not null" json:"firstName"`
	Phone     string `gorm:"type:varchar(30);not null" json:"phone"`
	Email     string `gorm:"type:varchar(255)" json:"email,omitempty"`
	Status    string `gorm:"type:varchar(20);not null;default:'confirmed';index:idx_appointments_barber_date,priority:3" json:"status"`
}

// IsConfirmed reports whether the appointment still occupies its slot.
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}
