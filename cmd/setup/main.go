// Command setup bootstraps the scheduling database from scratch and loads
// the demo dataset: 3 customers, 4 vehicles, 8 services, 3 appointments.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"autoshop-backend/config"
	"autoshop-backend/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}

	// Fresh start: in SQLite mode the whole database is one file.
	if os.Getenv("DB_URL") == "" {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = config.DefaultDBPath
		}
		if _, err := os.Stat(path); err == nil {
			if err := os.Remove(path); err != nil {
				logrus.Fatalf("Failed to remove existing database: %v", err)
			}
			logrus.Info("Removed existing database")
		}
	}

	config.ConnectDB()
	db := config.DB

	logrus.Info("Creating tables...")
	if err := models.AutoMigrate(db); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	logrus.Info("Inserting sample services...")
	servicesData := []models.Service{
		{Name: "Oil Change", Description: "Regular oil and filter change", EstimatedDuration: 30, Price: 49.99, IsActive: true},
		{Name: "Brake Inspection", Description: "Complete brake system inspection", EstimatedDuration: 45, Price: 75.00, IsActive: true},
		{Name: "Tire Rotation", Description: "Rotate tires for even wear", EstimatedDuration: 30, Price: 35.00, IsActive: true},
		{Name: "Battery Test", Description: "Battery and charging system test", EstimatedDuration: 20, Price: 25.00, IsActive: true},
		{Name: "General Inspection", Description: "Comprehensive vehicle inspection", EstimatedDuration: 60, Price: 99.99, IsActive: true},
		{Name: "Air Filter Replacement", Description: "Replace engine air filter", EstimatedDuration: 15, Price: 29.99, IsActive: true},
		{Name: "Transmission Service", Description: "Transmission fluid change and inspection", EstimatedDuration: 90, Price: 149.99, IsActive: true},
		{Name: "Cooling System Service", Description: "Coolant flush and system check", EstimatedDuration: 60, Price: 89.99, IsActive: true},
	}
	if err := db.Create(&servicesData).Error; err != nil {
		logrus.Fatalf("Failed to insert services: %v", err)
	}

	logrus.Info("Inserting sample customers...")
	customers := []models.Customer{
		{FirstName: "John", LastName: "Doe", Email: "john.doe@email.com", Password: "password123", Phone: "555-0123", Address: "123 Main St, Anytown, ST 12345"},
		{FirstName: "Jane", LastName: "Smith", Email: "jane.smith@email.com", Password: "password123", Phone: "555-0124", Address: "456 Oak Ave, Somewhere, ST 12346"},
		{FirstName: "Bob", LastName: "Johnson", Email: "bob.johnson@email.com", Password: "password123", Phone: "555-0125", Address: "789 Pine Rd, Elsewhere, ST 12347"},
	}
	for i := range customers {
		if err := db.Create(&customers[i]).Error; err != nil {
			logrus.Fatalf("Failed to insert customer: %v", err)
		}
	}

	logrus.Info("Inserting sample vehicles...")
	vehicles := []models.Vehicle{
		{CustomerID: customers[0].ID, Make: "Toyota", Model: "Camry", Year: 2020, VIN: strPtr("JT2BF22K5X0123456"), LicensePlate: "ABC-123", Color: "Silver", Mileage: intPtr(25000)},
		{CustomerID: customers[0].ID, Make: "Honda", Model: "Civic", Year: 2018, VIN: strPtr("JHMFC2F59JX987654"), LicensePlate: "XYZ-789", Color: "Blue", Mileage: intPtr(45000)},
		{CustomerID: customers[1].ID, Make: "Ford", Model: "F-150", Year: 2021, VIN: strPtr("1FTFW1E51MFA12345"), LicensePlate: "DEF-456", Color: "Red", Mileage: intPtr(15000)},
		{CustomerID: customers[2].ID, Make: "Chevrolet", Model: "Malibu", Year: 2019, VIN: strPtr("1G1ZB5ST8KF123456"), LicensePlate: "GHI-012", Color: "White", Mileage: intPtr(32000)},
	}
	if err := db.Create(&vehicles).Error; err != nil {
		logrus.Fatalf("Failed to insert vehicles: %v", err)
	}

	logrus.Info("Inserting sample appointments...")
	appointments := []models.Appointment{
		{CustomerID: customers[0].ID, VehicleID: vehicles[0].ID, ServiceID: servicesData[0].ID, AppointmentDate: "2025-01-15", AppointmentTime: "09:00", Status: models.StatusScheduled, Notes: "Regular maintenance"},
		{CustomerID: customers[1].ID, VehicleID: vehicles[2].ID, ServiceID: servicesData[1].ID, AppointmentDate: "2025-01-16", AppointmentTime: "10:30", Status: models.StatusScheduled, Notes: "Customer reported squeaking"},
		{CustomerID: customers[2].ID, VehicleID: vehicles[3].ID, ServiceID: servicesData[2].ID, AppointmentDate: "2025-01-17", AppointmentTime: "14:00", Status: models.StatusScheduled},
	}
	if err := db.Create(&appointments).Error; err != nil {
		logrus.Fatalf("Failed to insert appointments: %v", err)
	}

	logrus.Info("Creating indexes...")
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_customers_name ON customers(last_name, first_name)",
		"CREATE INDEX IF NOT EXISTS idx_appointments_date ON appointments(appointment_date)",
	}
	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			logrus.Fatalf("Failed to create index: %v", err)
		}
	}

	logrus.Info("Database setup completed successfully!")
}
