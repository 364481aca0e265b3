package models

// ContactMessage is a contact form submission. Write-once: the booking core
// never reads these back, they are reviewed out of band.
type ContactMessage struct {
	BaseModel
	FirstName string `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName  string `gorm:"type:varchar(100);not null" json:"lastName"`
	Email     string `gorm:"type:varchar(255);not null" json:"email"`
	Phone     string `gorm:"type:varchar(30);not null" json:"phone"`
	Message   string `gorm:"type:text;not null" json:"message"`
}
