package models

import "time"

type Vehicle struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerID   uint      `gorm:"index;not null" json:"customer_id"`
	Make         string    `gorm:"not null" json:"make"`
	Model        string    `gorm:"not null" json:"model"`
	Year         int       `gorm:"not null" json:"year"`
	VIN          *string   `gorm:"column:vin;uniqueIndex" json:"vin"`
	LicensePlate string    `json:"license_plate"`
	Color        string    `json:"color"`
	Mileage      *int      `json:"mileage"`
	CreatedAt    time.Time `json:"created_at"`

	Appointments []Appointment `gorm:"foreignKey:VehicleID" json:"-"`
}
