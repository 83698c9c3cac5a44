package models

type Service struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	Name              string  `gorm:"not null" json:"name"`
	Description       string  `json:"description"`
	EstimatedDuration int     `gorm:"not null" json:"estimated_duration"` // in minutes
	Price             float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	IsActive          bool    `gorm:"default:true" json:"is_active"`

	Appointments []Appointment `gorm:"foreignKey:ServiceID" json:"-"`
}
