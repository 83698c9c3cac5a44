package models

import (
	"time"

	"gorm.io/gorm"

	"autoshop-backend/utils"
)

type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"not null" json:"first_name"`
	LastName  string    `gorm:"not null" json:"last_name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Phone     string    `gorm:"not null" json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`

	Vehicles     []Vehicle     `gorm:"foreignKey:CustomerID" json:"-"`
	Appointments []Appointment `gorm:"foreignKey:CustomerID" json:"-"`
}

// Hash the password before the row is written
func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	hashed, err := utils.HashPassword(c.Password)
	if err != nil {
		return err
	}
	c.Password = hashed
	return
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
