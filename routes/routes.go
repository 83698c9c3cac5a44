package routes

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"

	"autoshop-backend/config"
	"autoshop-backend/controllers"
	"autoshop-backend/utils"
)

func sessionStore() sessions.Store {
	secret := []byte(os.Getenv("SESSION_SECRET"))
	if len(secret) == 0 {
		secret = []byte("change-me")
	}
	// SESSION_BACKEND=memory keeps session state server-side; the default
	// cookie store carries it on the client.
	if os.Getenv("SESSION_BACKEND") == "memory" {
		return memstore.NewStore(secret)
	}
	return cookie.NewStore(secret)
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(sessions.Sessions("autoshop_session", sessionStore()))
	r.Use(config.RequestID())
	r.Use(config.PerformanceLogger())

	// public pages
	r.GET("/", controllers.Index)
	r.GET("/services", controllers.Services)
	r.GET("/login", controllers.LoginPage)
	r.POST("/login", controllers.Login)
	r.GET("/register", controllers.RegisterPage)
	r.POST("/register", controllers.Register)
	r.GET("/logout", controllers.Logout)

	// customer pages
	customer := r.Group("/")
	customer.Use(utils.LoginRequired())
	{
		customer.GET("/dashboard", controllers.Dashboard)
		customer.GET("/profile", controllers.Profile)
		customer.GET("/profile/edit", controllers.EditProfilePage)
		customer.POST("/profile/edit", controllers.EditProfile)

		customer.GET("/my-vehicles", controllers.MyVehicles)
		customer.GET("/vehicles/add", controllers.AddVehiclePage)
		customer.POST("/vehicles/add", controllers.AddVehicle)
		customer.GET("/api/my-vehicles", controllers.APIMyVehicles)

		customer.GET("/my-appointments", controllers.MyAppointments)
		customer.GET("/appointments/add", controllers.AddAppointmentPage)
		customer.POST("/appointments/add", controllers.AddAppointment)
		customer.GET("/appointments/edit/:id", controllers.EditAppointmentPage)
		customer.POST("/appointments/edit/:id", controllers.EditAppointment)
		customer.POST("/appointments/cancel/:id", controllers.CancelAppointment)
	}

	// admin surface
	r.GET("/admin/login", controllers.AdminLoginPage)
	r.POST("/admin/login", controllers.AdminLogin)
	r.GET("/admin/logout", controllers.AdminLogout)

	analytics := controllers.AnalyticsController{}
	admin := r.Group("/admin")
	admin.Use(utils.AdminRequired())
	{
		admin.GET("", controllers.AdminDashboard)
		admin.GET("/customers", controllers.AdminCustomers)
		admin.POST("/customers/delete/:id", controllers.AdminDeleteCustomer)
		admin.GET("/vehicles", controllers.AdminVehicles)
		admin.POST("/vehicles/delete/:id", controllers.AdminDeleteVehicle)
		admin.GET("/appointments", controllers.AdminAppointments)
		admin.GET("/services", controllers.AdminServices)
		admin.GET("/analytics", analytics.AdminAnalytics)
		admin.GET("/api/chart-data", analytics.AdminChartData)
	}

	return r
}
