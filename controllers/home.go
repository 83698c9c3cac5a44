package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"autoshop-backend/config"
	"autoshop-backend/models"
	"autoshop-backend/utils"
)

func activeServices() ([]models.Service, error) {
	var services []models.Service
	err := config.DB.Where("is_active = ?", true).Order("name").Find(&services).Error
	return services, err
}

// Index is the public landing page: the active service catalog plus
// whoever is logged in.
func Index(c *gin.Context) {
	services, err := activeServices()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	payload := gin.H{
		"services": services,
		"flashes":  utils.Flashes(c),
	}
	if name := sessions.Default(c).Get(utils.SessionCustomerName); name != nil {
		payload["customer_name"] = name
	}
	c.JSON(http.StatusOK, payload)
}

// Services lists the active catalog.
func Services(c *gin.Context) {
	services, err := activeServices()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services, "flashes": utils.Flashes(c)})
}
