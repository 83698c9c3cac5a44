package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"autoshop-backend/config"
	"autoshop-backend/models"
	"autoshop-backend/utils"
)

// Dashboard shows the session customer's vehicles, their full appointment
// history and the upcoming slice of it.
func Dashboard(c *gin.Context) {
	customerID := sessionCustomerID(c)

	var vehicles []models.Vehicle
	if err := config.DB.Where("customer_id = ?", customerID).
		Order("year DESC, make, model").
		Find(&vehicles).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve vehicles")
		return
	}

	appointments, err := customerAppointments(customerID,
		"appointments.appointment_date DESC, appointments.appointment_time DESC")
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	today := time.Now().Format("2006-01-02")
	var upcoming []AppointmentRow
	err = config.DB.Table("appointments").
		Select("appointments.id, appointments.appointment_date, appointments.appointment_time, appointments.status, appointments.notes, "+
			"vehicles.make, vehicles.model, vehicles.year, "+
			"services.name AS service_name, services.price, services.estimated_duration").
		Joins("JOIN vehicles ON vehicles.id = appointments.vehicle_id").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.customer_id = ? AND appointments.appointment_date >= ?", customerID, today).
		Order("appointments.appointment_date ASC, appointments.appointment_time ASC").
		Scan(&upcoming).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, customerID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer":              customer,
		"vehicles":              vehicles,
		"appointments":          appointments,
		"upcoming_appointments": upcoming,
		"flashes":               utils.Flashes(c),
	})
}
