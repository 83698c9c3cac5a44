package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"autoshop-backend/config"
	"autoshop-backend/models"
	"autoshop-backend/utils"
)

func sessionCustomerID(c *gin.Context) uint {
	return c.MustGet("customerId").(uint)
}

// MyVehicles lists the session customer's vehicles, newest model year first.
func MyVehicles(c *gin.Context) {
	customerID := sessionCustomerID(c)

	var vehicles []models.Vehicle
	if err := config.DB.Where("customer_id = ?", customerID).
		Order("year DESC, make, model").
		Find(&vehicles).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve vehicles")
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles, "flashes": utils.Flashes(c)})
}

// AddVehiclePage renders the add-vehicle form shell.
func AddVehiclePage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"flashes": utils.Flashes(c)})
}

// AddVehicle inserts a vehicle scoped to the session customer. Year must be
// an integer; mileage is optional but must be an integer when given.
func AddVehicle(c *gin.Context) {
	customerID := sessionCustomerID(c)

	year, err := utils.ParseIntField(c.PostForm("year"))
	if err != nil {
		addVehicleFailed(c, "Error adding vehicle. Please check your input.")
		return
	}
	mileage, err := utils.ParseOptionalIntField(c.PostForm("mileage"))
	if err != nil {
		addVehicleFailed(c, "Error adding vehicle. Please check your input.")
		return
	}

	vehicle := models.Vehicle{
		CustomerID:   customerID,
		Make:         strings.TrimSpace(c.PostForm("make")),
		Model:        strings.TrimSpace(c.PostForm("model")),
		Year:         year,
		LicensePlate: strings.TrimSpace(c.PostForm("license_plate")),
		Color:        strings.TrimSpace(c.PostForm("color")),
		Mileage:      mileage,
	}
	if vin := strings.TrimSpace(c.PostForm("vin")); vin != "" {
		vehicle.VIN = &vin
	}

	if vehicle.Make == "" || vehicle.Model == "" {
		addVehicleFailed(c, "Error adding vehicle. Please check your input.")
		return
	}

	if err := config.DB.Create(&vehicle).Error; err != nil {
		addVehicleFailed(c, "Error adding vehicle. Please check your input.")
		return
	}

	utils.AddFlash(c, "success", "Vehicle added successfully!")
	c.Redirect(http.StatusFound, "/my-vehicles")
}

func addVehicleFailed(c *gin.Context, message string) {
	if utils.WantsJSON(c) {
		utils.RespondWithError(c, http.StatusBadRequest, message)
		return
	}
	utils.AddFlash(c, "error", message)
	c.Redirect(http.StatusFound, "/vehicles/add")
}

// APIMyVehicles serves the session customer's vehicles as a bare JSON
// array for AJAX and token clients.
func APIMyVehicles(c *gin.Context) {
	customerID := sessionCustomerID(c)

	var vehicles []models.Vehicle
	if err := config.DB.Where("customer_id = ?", customerID).
		Order("make, model").
		Find(&vehicles).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve vehicles")
		return
	}

	c.JSON(http.StatusOK, vehicles)
}
