package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"autoshop-backend/config"
	"autoshop-backend/models"
	"autoshop-backend/utils"
)

// AppointmentRow is an appointment joined with its vehicle and service.
type AppointmentRow struct {
	ID                uint    `json:"id"`
	AppointmentDate   string  `json:"appointment_date"`
	AppointmentTime   string  `json:"appointment_time"`
	Status            string  `json:"status"`
	Notes             string  `json:"notes"`
	Make              string  `json:"make"`
	Model             string  `json:"model"`
	Year              int     `json:"year"`
	ServiceName       string  `json:"service_name"`
	Price             float64 `json:"price"`
	EstimatedDuration int     `json:"estimated_duration"`
}

func customerAppointments(customerID uint, order string) ([]AppointmentRow, error) {
	var rows []AppointmentRow
	err := config.DB.Table("appointments").
		Select("appointments.id, appointments.appointment_date, appointments.appointment_time, appointments.status, appointments.notes, "+
			"vehicles.make, vehicles.model, vehicles.year, "+
			"services.name AS service_name, services.price, services.estimated_duration").
		Joins("JOIN vehicles ON vehicles.id = appointments.vehicle_id").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.customer_id = ?", customerID).
		Order(order).
		Scan(&rows).Error
	return rows, err
}

// vehicleOwnedBy cross-checks that the vehicle belongs to the customer.
func vehicleOwnedBy(vehicleID, customerID uint) bool {
	var vehicle models.Vehicle
	err := config.DB.Where("id = ? AND customer_id = ?", vehicleID, customerID).
		First(&vehicle).Error
	return err == nil
}

// MyAppointments lists the session customer's appointments, newest first.
func MyAppointments(c *gin.Context) {
	customerID := sessionCustomerID(c)

	rows, err := customerAppointments(customerID,
		"appointments.appointment_date DESC, appointments.appointment_time DESC")
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": rows, "flashes": utils.Flashes(c)})
}

// AddAppointmentPage serves the booking form data: the customer's vehicles
// and the active service catalog. A customer with no vehicles is pushed to
// the add-vehicle form first.
func AddAppointmentPage(c *gin.Context) {
	customerID := sessionCustomerID(c)

	var vehicles []models.Vehicle
	if err := config.DB.Where("customer_id = ?", customerID).
		Order("make, model").Find(&vehicles).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve vehicles")
		return
	}
	if len(vehicles) == 0 {
		utils.AddFlash(c, "warning", "You need to add a vehicle first before scheduling an appointment.")
		c.Redirect(http.StatusFound, "/vehicles/add")
		return
	}

	services, err := activeServices()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicles": vehicles,
		"services": services,
		"flashes":  utils.Flashes(c),
	})
}

// AddAppointment books a scheduled appointment after verifying the chosen
// vehicle belongs to the session customer and the service is active.
func AddAppointment(c *gin.Context) {
	customerID := sessionCustomerID(c)

	vehicleID, err := utils.ParseIntField(c.PostForm("vehicle_id"))
	if err != nil {
		appointmentFailed(c, "/appointments/add", "Invalid vehicle selection.")
		return
	}
	serviceID, err := utils.ParseIntField(c.PostForm("service_id"))
	if err != nil {
		appointmentFailed(c, "/appointments/add", "Error scheduling appointment. Please try again.")
		return
	}
	date := strings.TrimSpace(c.PostForm("appointment_date"))
	timeOfDay := strings.TrimSpace(c.PostForm("appointment_time"))
	notes := strings.TrimSpace(c.PostForm("notes")) // optional

	if date == "" || timeOfDay == "" {
		appointmentFailed(c, "/appointments/add", "Error scheduling appointment. Please try again.")
		return
	}

	if !vehicleOwnedBy(uint(vehicleID), customerID) {
		appointmentFailed(c, "/appointments/add", "Invalid vehicle selection.")
		return
	}

	var service models.Service
	if err := config.DB.Where("id = ? AND is_active = ?", serviceID, true).
		First(&service).Error; err != nil {
		appointmentFailed(c, "/appointments/add", "Error scheduling appointment. Please try again.")
		return
	}

	appointment := models.Appointment{
		CustomerID:      customerID,
		VehicleID:       uint(vehicleID),
		ServiceID:       service.ID,
		AppointmentDate: date,
		AppointmentTime: timeOfDay,
		Status:          models.StatusScheduled,
		Notes:           notes,
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		appointmentFailed(c, "/appointments/add", "Error scheduling appointment. Please try again.")
		return
	}

	utils.AddFlash(c, "success", "Appointment scheduled successfully!")
	c.Redirect(http.StatusFound, "/my-appointments")
}

func appointmentFailed(c *gin.Context, back, message string) {
	if utils.WantsJSON(c) {
		utils.RespondWithError(c, http.StatusBadRequest, message)
		return
	}
	utils.AddFlash(c, "error", message)
	c.Redirect(http.StatusFound, back)
}

func ownedAppointment(c *gin.Context) (*models.Appointment, bool) {
	customerID := sessionCustomerID(c)

	id, err := utils.ParseIntField(c.Param("id"))
	if err != nil {
		utils.AddFlash(c, "error", "Appointment not found.")
		c.Redirect(http.StatusFound, "/my-appointments")
		return nil, false
	}

	var appointment models.Appointment
	err = config.DB.Where("id = ? AND customer_id = ?", id, customerID).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.AddFlash(c, "error", "Appointment not found.")
		} else {
			utils.AddFlash(c, "error", "Database error.")
		}
		c.Redirect(http.StatusFound, "/my-appointments")
		return nil, false
	}
	return &appointment, true
}

// EditAppointmentPage serves the edit form data for a scheduled appointment.
func EditAppointmentPage(c *gin.Context) {
	appointment, ok := ownedAppointment(c)
	if !ok {
		return
	}
	if !appointment.CanEdit() {
		utils.AddFlash(c, "warning", "Only scheduled appointments can be edited.")
		c.Redirect(http.StatusFound, "/my-appointments")
		return
	}

	var vehicles []models.Vehicle
	if err := config.DB.Where("customer_id = ?", appointment.CustomerID).
		Order("make, model").Find(&vehicles).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve vehicles")
		return
	}
	services, err := activeServices()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appointment": appointment,
		"vehicles":    vehicles,
		"services":    services,
		"flashes":     utils.Flashes(c),
	})
}

// EditAppointment overwrites date, time, vehicle, service and notes in
// place. Allowed only while the appointment is still scheduled; the
// vehicle-ownership invariant is re-checked on every write.
func EditAppointment(c *gin.Context) {
	appointment, ok := ownedAppointment(c)
	if !ok {
		return
	}
	if !appointment.CanEdit() {
		if utils.WantsJSON(c) {
			utils.RespondWithError(c, http.StatusConflict, "Only scheduled appointments can be edited.")
			return
		}
		utils.AddFlash(c, "warning", "Only scheduled appointments can be edited.")
		c.Redirect(http.StatusFound, "/my-appointments")
		return
	}

	editPath := "/appointments/edit/" + c.Param("id")

	vehicleID, err := utils.ParseIntField(c.PostForm("vehicle_id"))
	if err != nil {
		appointmentFailed(c, editPath, "Invalid vehicle selection.")
		return
	}
	serviceID, err := utils.ParseIntField(c.PostForm("service_id"))
	if err != nil {
		appointmentFailed(c, editPath, "Error updating appointment. Please try again.")
		return
	}
	date := strings.TrimSpace(c.PostForm("appointment_date"))
	timeOfDay := strings.TrimSpace(c.PostForm("appointment_time"))
	notes := strings.TrimSpace(c.PostForm("notes"))

	if date == "" || timeOfDay == "" {
		appointmentFailed(c, editPath, "Error updating appointment. Please try again.")
		return
	}

	if !vehicleOwnedBy(uint(vehicleID), appointment.CustomerID) {
		appointmentFailed(c, editPath, "Invalid vehicle selection.")
		return
	}

	updates := map[string]interface{}{
		"vehicle_id":       uint(vehicleID),
		"service_id":       uint(serviceID),
		"appointment_date": date,
		"appointment_time": timeOfDay,
		"notes":            notes,
	}
	if err := config.DB.Model(appointment).Updates(updates).Error; err != nil {
		appointmentFailed(c, editPath, "Error updating appointment. Please try again.")
		return
	}

	utils.AddFlash(c, "success", "Appointment updated successfully!")
	c.Redirect(http.StatusFound, "/my-appointments")
}

// CancelAppointment moves a scheduled appointment to cancelled. Cancelling
// again, or cancelling a completed appointment, is a no-op with its own
// warning rather than an error.
func CancelAppointment(c *gin.Context) {
	appointment, ok := ownedAppointment(c)
	if !ok {
		return
	}

	switch appointment.Status {
	case models.StatusCancelled:
		utils.AddFlash(c, "warning", "Appointment is already cancelled.")
	case models.StatusCompleted:
		utils.AddFlash(c, "warning", "Cannot cancel completed appointment.")
	default:
		err := config.DB.Model(appointment).
			Update("status", models.StatusCancelled).Error
		if err != nil {
			utils.AddFlash(c, "error", "Error cancelling appointment. Please try again.")
		} else {
			utils.AddFlash(c, "success", "Appointment cancelled successfully.")
		}
	}

	c.Redirect(http.StatusFound, "/my-appointments")
}
