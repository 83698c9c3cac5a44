// controllers/admin.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"autoshop-backend/config"
	"autoshop-backend/models"
	"autoshop-backend/services"
	"autoshop-backend/utils"
)

// AdminLoginPage renders the admin login shell.
func AdminLoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"flashes": utils.Flashes(c)})
}

// AdminLogin checks the operator credential pair against the configured
// verifier and flags the session on success.
func AdminLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if !utils.AdminVerifier.Verify(username, password) {
		utils.AddFlash(c, "error", "Invalid admin credentials.")
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}

	s := sessions.Default(c)
	s.Set(utils.SessionAdminFlag, true)
	_ = s.Save()

	utils.AddFlash(c, "success", "Admin login successful!")
	c.Redirect(http.StatusFound, "/admin")
}

// AdminLogout drops only the admin flag, leaving any customer session alone.
func AdminLogout(c *gin.Context) {
	s := sessions.Default(c)
	s.Delete(utils.SessionAdminFlag)
	_ = s.Save()

	utils.AddFlash(c, "info", "Admin logged out successfully.")
	c.Redirect(http.StatusFound, "/")
}

type appointmentStatusCounts struct {
	TotalAppointments int `json:"total_appointments"`
	Scheduled         int `json:"scheduled"`
	InProgress        int `json:"in_progress"`
	Completed         int `json:"completed"`
	Cancelled         int `json:"cancelled"`
}

type recentAppointmentRow struct {
	ID              uint   `json:"id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Status          string `json:"status"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Make            string `json:"make"`
	Model           string `json:"model"`
	Year            int    `json:"year"`
	ServiceName     string `json:"service_name"`
}

// AdminDashboard aggregates the overview statistics. Everything is
// recomputed per request; there is no caching layer.
func AdminDashboard(c *gin.Context) {
	var totalCustomers, totalVehicles, totalServices int64
	if err := config.DB.Model(&models.Customer{}).Count(&totalCustomers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load statistics")
		return
	}
	config.DB.Model(&models.Vehicle{}).Count(&totalVehicles)
	config.DB.Model(&models.Service{}).Where("is_active = ?", true).Count(&totalServices)

	var newCustomers int64
	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	config.DB.Model(&models.Customer{}).
		Where("created_at >= ?", thirtyDaysAgo).
		Count(&newCustomers)

	var statusCounts appointmentStatusCounts
	err := config.DB.Model(&models.Appointment{}).
		Select("COUNT(*) AS total_appointments, " +
			"COUNT(CASE WHEN status = 'scheduled' THEN 1 END) AS scheduled, " +
			"COUNT(CASE WHEN status = 'in_progress' THEN 1 END) AS in_progress, " +
			"COUNT(CASE WHEN status = 'completed' THEN 1 END) AS completed, " +
			"COUNT(CASE WHEN status = 'cancelled' THEN 1 END) AS cancelled").
		Scan(&statusCounts).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load statistics")
		return
	}

	var recent []recentAppointmentRow
	err = config.DB.Table("appointments").
		Select("appointments.id, appointments.appointment_date, appointments.appointment_time, appointments.status, " +
			"customers.first_name, customers.last_name, " +
			"vehicles.make, vehicles.model, vehicles.year, " +
			"services.name AS service_name").
		Joins("JOIN customers ON customers.id = appointments.customer_id").
		Joins("JOIN vehicles ON vehicles.id = appointments.vehicle_id").
		Joins("JOIN services ON services.id = appointments.service_id").
		Order("appointments.created_at DESC").
		Limit(10).
		Scan(&recent).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load recent appointments")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"customers": gin.H{
				"total_customers":       totalCustomers,
				"new_customers_30_days": newCustomers,
			},
			"vehicles":     gin.H{"total_vehicles": totalVehicles},
			"appointments": statusCounts,
			"services":     gin.H{"total_services": totalServices},
		},
		"recent_appointments": recent,
		"flashes":             utils.Flashes(c),
	})
}

type adminCustomerRow struct {
	ID               uint    `json:"id"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	Address          string  `json:"address"`
	VehicleCount     int     `json:"vehicle_count"`
	AppointmentCount int     `json:"appointment_count"`
	LastAppointment  *string `json:"last_appointment"`
}

// AdminCustomers lists every customer with vehicle and appointment counts.
func AdminCustomers(c *gin.Context) {
	var rows []adminCustomerRow
	err := config.DB.Table("customers").
		Select("customers.id, customers.first_name, customers.last_name, customers.email, customers.phone, customers.address, " +
			"COUNT(DISTINCT vehicles.id) AS vehicle_count, " +
			"COUNT(DISTINCT appointments.id) AS appointment_count, " +
			"MAX(appointments.appointment_date) AS last_appointment").
		Joins("LEFT JOIN vehicles ON customers.id = vehicles.customer_id").
		Joins("LEFT JOIN appointments ON customers.id = appointments.customer_id").
		Group("customers.id, customers.first_name, customers.last_name, customers.email, customers.phone, customers.address").
		Order("customers.last_name, customers.first_name").
		Scan(&rows).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, gin.H{"customers": rows, "flashes": utils.Flashes(c)})
}

// AdminDeleteCustomer hard deletes a customer and everything they own.
func AdminDeleteCustomer(c *gin.Context) {
	id, err := utils.ParseIntField(c.Param("id"))
	if err != nil {
		utils.AddFlash(c, "error", "Customer not found.")
		c.Redirect(http.StatusFound, "/admin/customers")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		utils.AddFlash(c, "error", "Customer not found.")
		c.Redirect(http.StatusFound, "/admin/customers")
		return
	}

	if err := services.DeleteCustomerCascade(config.DB, customer.ID); err != nil {
		utils.AddFlash(c, "error", "Error deleting customer. Please try again.")
		c.Redirect(http.StatusFound, "/admin/customers")
		return
	}

	utils.AddFlash(c, "success",
		"Customer "+customer.FullName()+" and all related data deleted successfully.")
	c.Redirect(http.StatusFound, "/admin/customers")
}

type adminVehicleRow struct {
	ID               uint    `json:"id"`
	Make             string  `json:"make"`
	Model            string  `json:"model"`
	Year             int     `json:"year"`
	VIN              *string `json:"vin"`
	LicensePlate     string  `json:"license_plate"`
	Color            string  `json:"color"`
	Mileage          *int    `json:"mileage"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Email            string  `json:"email"`
	AppointmentCount int     `json:"appointment_count"`
}

// AdminVehicles lists every vehicle with its owner and appointment count.
func AdminVehicles(c *gin.Context) {
	var rows []adminVehicleRow
	err := config.DB.Table("vehicles").
		Select("vehicles.id, vehicles.make, vehicles.model, vehicles.year, vehicles.vin, vehicles.license_plate, vehicles.color, vehicles.mileage, " +
			"customers.first_name, customers.last_name, customers.email, " +
			"COUNT(appointments.id) AS appointment_count").
		Joins("JOIN customers ON vehicles.customer_id = customers.id").
		Joins("LEFT JOIN appointments ON vehicles.id = appointments.vehicle_id").
		Group("vehicles.id, vehicles.make, vehicles.model, vehicles.year, vehicles.vin, vehicles.license_plate, vehicles.color, vehicles.mileage, " +
			"customers.first_name, customers.last_name, customers.email").
		Order("customers.last_name, customers.first_name, vehicles.year DESC").
		Scan(&rows).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve vehicles")
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicles": rows, "flashes": utils.Flashes(c)})
}

// AdminDeleteVehicle hard deletes a vehicle and its appointments.
func AdminDeleteVehicle(c *gin.Context) {
	id, err := utils.ParseIntField(c.Param("id"))
	if err != nil {
		utils.AddFlash(c, "error", "Vehicle not found.")
		c.Redirect(http.StatusFound, "/admin/vehicles")
		return
	}

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, id).Error; err != nil {
		utils.AddFlash(c, "error", "Vehicle not found.")
		c.Redirect(http.StatusFound, "/admin/vehicles")
		return
	}

	if err := services.DeleteVehicleCascade(config.DB, vehicle.ID); err != nil {
		utils.AddFlash(c, "error", "Error deleting vehicle. Please try again.")
		c.Redirect(http.StatusFound, "/admin/vehicles")
		return
	}

	utils.AddFlash(c, "success", "Vehicle and all related appointments deleted successfully.")
	c.Redirect(http.StatusFound, "/admin/vehicles")
}

type adminAppointmentRow struct {
	ID                 uint    `json:"id"`
	AppointmentDate    string  `json:"appointment_date"`
	AppointmentTime    string  `json:"appointment_time"`
	Status             string  `json:"status"`
	Notes              string  `json:"notes"`
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone"`
	Make               string  `json:"make"`
	Model              string  `json:"model"`
	Year               int     `json:"year"`
	LicensePlate       string  `json:"license_plate"`
	ServiceName        string  `json:"service_name"`
	ServiceDescription string  `json:"service_description"`
	EstimatedDuration  int     `json:"estimated_duration"`
	Price              float64 `json:"price"`
}

// AdminAppointments lists every appointment fully joined.
func AdminAppointments(c *gin.Context) {
	var rows []adminAppointmentRow
	err := config.DB.Table("appointments").
		Select("appointments.id, appointments.appointment_date, appointments.appointment_time, appointments.status, appointments.notes, " +
			"customers.first_name, customers.last_name, customers.email, customers.phone, " +
			"vehicles.make, vehicles.model, vehicles.year, vehicles.license_plate, " +
			"services.name AS service_name, services.description AS service_description, services.estimated_duration, services.price").
		Joins("JOIN customers ON customers.id = appointments.customer_id").
		Joins("JOIN vehicles ON vehicles.id = appointments.vehicle_id").
		Joins("JOIN services ON services.id = appointments.service_id").
		Order("appointments.appointment_date DESC, appointments.appointment_time DESC").
		Scan(&rows).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": rows, "flashes": utils.Flashes(c)})
}

type adminServiceRow struct {
	ID                uint    `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	EstimatedDuration int     `json:"estimated_duration"`
	Price             float64 `json:"price"`
	IsActive          bool    `json:"is_active"`
	AppointmentCount  int     `json:"appointment_count"`
	TotalRevenue      float64 `json:"total_revenue"`
}

// AdminServices lists the whole catalog with usage counts and the revenue
// realized from completed appointments.
func AdminServices(c *gin.Context) {
	var rows []adminServiceRow
	err := config.DB.Table("services").
		Select("services.id, services.name, services.description, services.estimated_duration, services.price, services.is_active, " +
			"COUNT(appointments.id) AS appointment_count, " +
			"COALESCE(SUM(CASE WHEN appointments.status = 'completed' THEN services.price ELSE 0 END), 0) AS total_revenue").
		Joins("LEFT JOIN appointments ON services.id = appointments.service_id").
		Group("services.id, services.name, services.description, services.estimated_duration, services.price, services.is_active").
		Order("services.name").
		Scan(&rows).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": rows, "flashes": utils.Flashes(c)})
}
