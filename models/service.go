package models

// Service is a bookable salon service. Reference data: seeded once, never
// mutated while the process runs.
type Service struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	// Price in grosze.
	Price           int    `gorm:"not null" json:"price"`
	DurationMinutes int    `gorm:"not null" json:"duration"`
	Icon            string `gorm:"type:varchar(100);not null" json:"icon"`
}
