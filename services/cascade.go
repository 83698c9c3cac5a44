package services

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"autoshop-backend/models"
)

// DeleteCustomerCascade hard deletes a customer together with their
// vehicles and appointments. Statement order matters for the foreign
// keys: appointments first, then vehicles, then the customer row. The
// whole sequence runs in one transaction and rolls back on any failure.
func DeleteCustomerCascade(db *gorm.DB, customerID uint) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", customerID).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", customerID).Delete(&models.Vehicle{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Customer{}, customerID).Error
	})
	if err != nil {
		logrus.WithField("customerId", customerID).Errorf("customer cascade delete rolled back: %v", err)
	}
	return err
}

// DeleteVehicleCascade hard deletes a vehicle and its appointments in one
// transaction.
func DeleteVehicleCascade(db *gorm.DB, vehicleID uint) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vehicle_id = ?", vehicleID).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Vehicle{}, vehicleID).Error
	})
	if err != nil {
		logrus.WithField("vehicleId", vehicleID).Errorf("vehicle cascade delete rolled back: %v", err)
	}
	return err
}
