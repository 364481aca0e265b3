package models

// Barber is a staff member shown on the team section and referenced by
// appointments. Same lifecycle as Service: seeded reference data.
type Barber struct {
	BaseModel
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	Title      string `gorm:"type:varchar(100);not null" json:"title"`
	Experience string `gorm:"type:text;not null" json:"experience"`
	ImageURL   string `gorm:"type:text;not null" json:"imageUrl"`
}
