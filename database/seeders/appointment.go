package seeders

import (
	"time"

	"mkbarber.pl/configs/configslog"
	"mkbarber.pl/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SampleAppointments returns two demo bookings for tomorrow so a fresh
// install shows occupied slots in the availability grid.
func SampleAppointments() []models.Appointment {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	return []models.Appointment{
		{
			BaseModel: models.BaseModel{ID: "1"},
			ServiceID: "1",
			BarberID:  "1",
			Date:      tomorrow,
			Time:      "11:00",
			FirstName: "Jan",
			Phone:     "+48123456789",
			Email:     "jan@example.com",
			Status:    models.AppointmentStatusConfirmed,
		},
		{
			BaseModel: models.BaseModel{ID: "2"},
			ServiceID: "2",
			BarberID:  "1",
			Date:      tomorrow,
			Time:      "13:00",
			FirstName: "Piotr",
			Phone:     "+48987654321",
			Status:    models.AppointmentStatusConfirmed,
		},
	}
}

// SeedSampleAppointments inserts the demo bookings into an empty
// appointments table. A non-empty table is left alone.
func SeedSampleAppointments(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Appointment{}).Count(&count).Error; err != nil {
		configslog.Log.Error("Appointment seed count failed", zap.Error(err))
		return err
	}
	if count > 0 {
		configslog.SLog.Info("Appointments table not empty, sample data skipped.")
		return nil
	}
	for _, appt := range SampleAppointments() {
		if err := db.Create(&appt).Error; err != nil {
			configslog.Log.Error("Appointment seed insert failed",
				zap.String("appointment_id", appt.ID), zap.Error(err))
			return err
		}
	}
	configslog.SLog.Info("Seeded sample appointments.")
	return nil
}
