// controllers/auth.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"autoshop-backend/config"
	"autoshop-backend/models"
	"autoshop-backend/utils"
)

func establishSession(c *gin.Context, customer *models.Customer) error {
	s := sessions.Default(c)
	s.Set(utils.SessionCustomerID, customer.ID)
	s.Set(utils.SessionCustomerName, customer.FullName())
	return s.Save()
}

// LoginPage renders the login form shell.
func LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"flashes": utils.Flashes(c)})
}

// Login authenticates a customer by email and password. Mismatches get one
// generic message regardless of which half was wrong.
func Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	var customer models.Customer
	result := config.DB.Where("email = ?", email).First(&customer)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		invalidCredentials(c)
		return
	}

	if !utils.CheckPasswordHash(password, customer.Password) {
		invalidCredentials(c)
		return
	}

	if err := establishSession(c, &customer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to establish session")
		return
	}

	if utils.WantsJSON(c) {
		token, err := utils.GenerateToken(customer.ID)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"customer": gin.H{
				"id":    customer.ID,
				"email": customer.Email,
				"name":  customer.FullName(),
			},
		})
		return
	}

	utils.AddFlash(c, "success", "Welcome back, "+customer.FirstName+"!")
	c.Redirect(http.StatusFound, "/dashboard")
}

func invalidCredentials(c *gin.Context) {
	if utils.WantsJSON(c) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid email or password.")
		return
	}
	utils.AddFlash(c, "error", "Invalid email or password.")
	c.Redirect(http.StatusFound, "/login")
}

// RegisterPage renders the registration form shell.
func RegisterPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"flashes": utils.Flashes(c)})
}

// Register validates the form, creates the customer and logs them in.
func Register(c *gin.Context) {
	firstName := strings.TrimSpace(c.PostForm("first_name"))
	lastName := strings.TrimSpace(c.PostForm("last_name"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	confirmPassword := c.PostForm("confirm_password")
	phone := strings.TrimSpace(c.PostForm("phone"))
	address := strings.TrimSpace(c.PostForm("address")) // optional

	if password != confirmPassword {
		registerFailed(c, "Passwords do not match.")
		return
	}
	if len(password) < 6 {
		registerFailed(c, "Password must be at least 6 characters long.")
		return
	}
	if firstName == "" || lastName == "" || email == "" || phone == "" {
		registerFailed(c, "Please fill in all required fields.")
		return
	}

	var existing models.Customer
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		registerFailed(c, "Email already registered. Please use a different email.")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	customer := models.Customer{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password, // hashed in BeforeCreate hook
		Phone:     phone,
		Address:   address,
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		registerFailed(c, "Registration failed. Please try again.")
		return
	}

	if err := establishSession(c, &customer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to establish session")
		return
	}

	if utils.WantsJSON(c) {
		c.JSON(http.StatusCreated, gin.H{
			"message": "Registration successful",
			"customer": gin.H{
				"id":    customer.ID,
				"email": customer.Email,
				"name":  customer.FullName(),
			},
		})
		return
	}

	utils.AddFlash(c, "success", "Registration successful! Welcome to our service center.")
	c.Redirect(http.StatusFound, "/dashboard")
}

func registerFailed(c *gin.Context, message string) {
	if utils.WantsJSON(c) {
		utils.RespondWithError(c, http.StatusBadRequest, message)
		return
	}
	utils.AddFlash(c, "error", message)
	c.Redirect(http.StatusFound, "/register")
}

// Logout clears the whole session, customer and admin state alike.
func Logout(c *gin.Context) {
	s := sessions.Default(c)
	s.Clear()
	_ = s.Save()

	utils.AddFlash(c, "info", "You have been logged out successfully.")
	c.Redirect(http.StatusFound, "/")
}
