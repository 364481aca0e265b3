package seeders

import (
	"errors"

	"mkbarber.pl/configs/configslog"
	"mkbarber.pl/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultServices returns the salon's service catalog. The same data backs
// the Postgres seeder and the in-memory store.
func DefaultServices() []models.Service {
	return []models.Service{
		{
			BaseModel:       models.BaseModel{ID: "1"},
			Name:            "Klasyczne Strzyżenie",
			Description:     "Profesjonalne strzyżenie dopasowane do Twojego stylu życia i kształtu twarzy.",
			Price:           6000,
			DurationMinutes: 45,
			Icon:            "fas fa-cut",
		},
		{
			BaseModel:       models.BaseModel{ID: "2"},
			Name:            "Stylizacja Brody",
			Description:     "Precyzyjne przycinanie i stylizacja brody z użyciem najlepszych produktów.",
			Price:           4500,
			DurationMinutes: 30,
			Icon:            "fas fa-user-tie",
		},
		{
			BaseModel:       models.BaseModel{ID: "3"},
			Name:            "Strzyżenie + Broda",
			Description:     "Kompletna usługa obejmująca strzyżenie włosów i stylizację brody.",
			Price:           9000,
			DurationMinutes: 75,
			Icon:            "fas fa-scissors",
		},
		{
			BaseModel:       models.BaseModel{ID: "4"},
			Name:            "Pakiet Luksusowy",
			Description:     "Strzyżenie, broda, mycie włosów i masaż głowy. Pełen relaks i odświeżenie.",
			Price:           12000,
			DurationMinutes: 90,
			Icon:            "fas fa-crown",
		},
	}
}

// DefaultBarbers returns the team shown on the site.
func DefaultBarbers() []models.Barber {
	return []models.Barber{
		{
			BaseModel:  models.BaseModel{ID: "1"},
			Name:       "Mikołaj Kowalski",
			Title:      "Senior Barber & Właściciel",
			Experience: "15 lat doświadczenia, specjalista od klasycznych strzyżeń i stylizacji brody.",
			ImageURL:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
		},
		{
			BaseModel:  models.BaseModel{ID: "2"},
			Name:       "Adam Nowak",
			Title:      "Master Stylista",
			Experience: "10 lat doświadczenia, ekspert w nowoczesnych trendach i stylizacji dla młodych mężczyzn.",
			ImageURL:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
		},
		{
			BaseModel:  models.BaseModel{ID: "3"},
			Name:       "Tomasz Wiśniewski",
			Title:      "Professional Barber",
			Experience: "8 lat doświadczenia, specjalista od precyzyjnych strzyżeń i tradycyjnych technik.",
			ImageURL:   "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
		},
	}
}

// SeedServices inserts missing catalog services. Existing rows are left
// untouched so re-running the seeder is safe.
func SeedServices(db *gorm.DB) error {
	configslog.SLog.Info("Seeding services...")
	var created int
	for _, svc := range DefaultServices() {
		var existing models.Service
		result := db.Where("id = ?", svc.ID).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Service seed lookup failed",
				zap.String("service_id", svc.ID), zap.Error(result.Error))
			return result.Error
		}
		if err := db.Create(&svc).Error; err != nil {
			configslog.Log.Error("Service seed insert failed",
				zap.String("service_id", svc.ID), zap.Error(err))
			return err
		}
		created++
	}
	if created > 0 {
		configslog.SLog.Infof("Seeded %d services.", created)
	} else {
		configslog.SLog.Info("Services already present, nothing seeded.")
	}
	return nil
}

// SeedBarbers inserts missing barbers, same contract as SeedServices.
func SeedBarbers(db *gorm.DB) error {
	configslog.SLog.Info("Seeding barbers...")
	var created int
	for _, barber := range DefaultBarbers() {
		var existing models.Barber
		result := db.Where("id = ?", barber.ID).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Barber seed lookup failed",
				zap.String("barber_id", barber.ID), zap.Error(result.Error))
			return result.Error
		}
		if err := db.Create(&barber).Error; err != nil {
			configslog.Log.Error("Barber seed insert failed",
				zap.String("barber_id", barber.ID), zap.Error(err))
			return err
		}
		created++
	}
	if created > 0 {
		configslog.SLog.Infof("Seeded %d barbers.", created)
	} else {
		configslog.SLog.Info("Barbers already present, nothing seeded.")
	}
	return nil
}
