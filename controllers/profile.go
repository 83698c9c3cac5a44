package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"autoshop-backend/config"
	"autoshop-backend/models"
	"autoshop-backend/utils"
)

// Profile shows the session customer's own record.
func Profile(c *gin.Context) {
	customerID := sessionCustomerID(c)

	var customer models.Customer
	if err := config.DB.First(&customer, customerID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": customer, "flashes": utils.Flashes(c)})
}

// EditProfilePage serves the edit form data.
func EditProfilePage(c *gin.Context) {
	Profile(c)
}

// EditProfile updates name, phone and address and refreshes the display
// name carried in the session.
func EditProfile(c *gin.Context) {
	customerID := sessionCustomerID(c)

	firstName := strings.TrimSpace(c.PostForm("first_name"))
	lastName := strings.TrimSpace(c.PostForm("last_name"))
	phone := strings.TrimSpace(c.PostForm("phone"))
	address := strings.TrimSpace(c.PostForm("address"))

	if firstName == "" || lastName == "" || phone == "" {
		utils.AddFlash(c, "error", "Error updating profile. Please try again.")
		c.Redirect(http.StatusFound, "/profile/edit")
		return
	}

	err := config.DB.Model(&models.Customer{}).
		Where("id = ?", customerID).
		Updates(map[string]interface{}{
			"first_name": firstName,
			"last_name":  lastName,
			"phone":      phone,
			"address":    address,
		}).Error
	if err != nil {
		utils.AddFlash(c, "error", "Error updating profile. Please try again.")
		c.Redirect(http.StatusFound, "/profile/edit")
		return
	}

	s := sessions.Default(c)
	s.Set(utils.SessionCustomerName, firstName+" "+lastName)
	_ = s.Save()

	utils.AddFlash(c, "success", "Profile updated successfully!")
	c.Redirect(http.StatusFound, "/profile")
}
