// Command dbviewer prints a read-only dump of the scheduling database.
// With no argument it shows everything; otherwise pass one of:
// customers, vehicles, appointments, services, stats.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"autoshop-backend/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found")
	}

	fmt.Println("=== Automotive Service Scheduling - Database Viewer ===")
	fmt.Printf("Time: %s\n", time.Now().Format("2006-01-02 15:04:05"))

	config.ConnectDB()
	db := config.DB

	if len(os.Args) > 1 {
		switch strings.ToLower(os.Args[1]) {
		case "customers":
			viewCustomers(db)
		case "vehicles":
			viewVehicles(db)
		case "appointments":
			viewAppointments(db)
		case "services":
			viewServices(db)
		case "stats":
			viewStatistics(db)
		default:
			fmt.Println("Invalid option. Use: customers, vehicles, appointments, services, or stats")
		}
		return
	}

	viewStatistics(db)
	viewCustomers(db)
	viewVehicles(db)
	viewServices(db)
	viewAppointments(db)
}

type customerRow struct {
	ID               uint
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	VehicleCount     int
	AppointmentCount int
}

func viewCustomers(db *gorm.DB) {
	var customers []customerRow
	err := db.Table("customers").
		Select("customers.id, customers.first_name, customers.last_name, customers.email, customers.phone, " +
			"COUNT(DISTINCT vehicles.id) AS vehicle_count, " +
			"COUNT(DISTINCT appointments.id) AS appointment_count").
		Joins("LEFT JOIN vehicles ON customers.id = vehicles.customer_id").
		Joins("LEFT JOIN appointments ON customers.id = appointments.customer_id").
		Group("customers.id, customers.first_name, customers.last_name, customers.email, customers.phone").
		Order("customers.last_name, customers.first_name").
		Scan(&customers).Error
	if err != nil {
		logrus.Errorf("Error viewing customers: %v", err)
		return
	}

	fmt.Println("\n=== CUSTOMERS ===")
	fmt.Printf("%-5s %-25s %-30s %-15s %-8s %-12s\n", "ID", "Name", "Email", "Phone", "Vehicles", "Appointments")
	fmt.Println(strings.Repeat("-", 95))
	for _, c := range customers {
		name := c.FirstName + " " + c.LastName
		fmt.Printf("%-5d %-25s %-30s %-15s %-8d %-12d\n", c.ID, name, c.Email, c.Phone, c.VehicleCount, c.AppointmentCount)
	}
	fmt.Printf("\nTotal customers: %d\n", len(customers))
}

type vehicleRow struct {
	ID               uint
	Make             string
	Model            string
	Year             int
	VIN              *string
	FirstName        string
	LastName         string
	AppointmentCount int
}

func viewVehicles(db *gorm.DB) {
	var vehicles []vehicleRow
	err := db.Table("vehicles").
		Select("vehicles.id, vehicles.make, vehicles.model, vehicles.year, vehicles.vin, " +
			"customers.first_name, customers.last_name, " +
			"COUNT(appointments.id) AS appointment_count").
		Joins("JOIN customers ON vehicles.customer_id = customers.id").
		Joins("LEFT JOIN appointments ON vehicles.id = appointments.vehicle_id").
		Group("vehicles.id, vehicles.make, vehicles.model, vehicles.year, vehicles.vin, customers.first_name, customers.last_name").
		Order("customers.last_name, customers.first_name, vehicles.year DESC").
		Scan(&vehicles).Error
	if err != nil {
		logrus.Errorf("Error viewing vehicles: %v", err)
		return
	}

	fmt.Println("\n=== VEHICLES ===")
	fmt.Printf("%-5s %-25s %-30s %-6s %-10s %-12s\n", "ID", "Owner", "Vehicle", "Year", "VIN", "Appointments")
	fmt.Println(strings.Repeat("-", 88))
	for _, v := range vehicles {
		owner := v.FirstName + " " + v.LastName
		info := v.Make + " " + v.Model
		vin := "N/A"
		if v.VIN != nil && *v.VIN != "" {
			vin = *v.VIN
			if len(vin) > 10 {
				vin = vin[:10]
			}
		}
		fmt.Printf("%-5d %-25s %-30s %-6d %-10s %-12d\n", v.ID, owner, info, v.Year, vin, v.AppointmentCount)
	}
	fmt.Printf("\nTotal vehicles: %d\n", len(vehicles))
}

type appointmentRow struct {
	ID              uint
	AppointmentDate string
	Status          string
	FirstName       string
	LastName        string
	Make            string
	Model           string
	Year            int
	ServiceName     string
	Price           float64
}

func viewAppointments(db *gorm.DB) {
	var appointments []appointmentRow
	err := db.Table("appointments").
		Select("appointments.id, appointments.appointment_date, appointments.status, " +
			"customers.first_name, customers.last_name, " +
			"vehicles.make, vehicles.model, vehicles.year, " +
			"services.name AS service_name, services.price").
		Joins("JOIN customers ON appointments.customer_id = customers.id").
		Joins("JOIN vehicles ON appointments.vehicle_id = vehicles.id").
		Joins("JOIN services ON appointments.service_id = services.id").
		Order("appointments.appointment_date DESC, appointments.appointment_time DESC").
		Limit(20).
		Scan(&appointments).Error
	if err != nil {
		logrus.Errorf("Error viewing appointments: %v", err)
		return
	}

	fmt.Println("\n=== RECENT APPOINTMENTS (Last 20) ===")
	fmt.Printf("%-5s %-20s %-25s %-20s %-12s %-12s %-8s\n", "ID", "Customer", "Vehicle", "Service", "Date", "Status", "Price")
	fmt.Println(strings.Repeat("-", 102))
	for _, a := range appointments {
		customer := a.FirstName + " " + a.LastName
		vehicle := fmt.Sprintf("%d %s %s", a.Year, a.Make, a.Model)
		fmt.Printf("%-5d %-20s %-25s %-20s %-12s %-12s $%-7.2f\n",
			a.ID, customer, vehicle, a.ServiceName, a.AppointmentDate, a.Status, a.Price)
	}
	fmt.Println("\nShowing recent 20 appointments")
}

type serviceRow struct {
	ID                uint
	Name              string
	EstimatedDuration int
	Price             float64
	IsActive          bool
	AppointmentCount  int
	TotalRevenue      float64
}

func viewServices(db *gorm.DB) {
	var svcs []serviceRow
	err := db.Table("services").
		Select("services.id, services.name, services.estimated_duration, services.price, services.is_active, " +
			"COUNT(appointments.id) AS appointment_count, " +
			"COALESCE(SUM(CASE WHEN appointments.status = 'completed' THEN services.price ELSE 0 END), 0) AS total_revenue").
		Joins("LEFT JOIN appointments ON services.id = appointments.service_id").
		Group("services.id, services.name, services.estimated_duration, services.price, services.is_active").
		Order("services.name").
		Scan(&svcs).Error
	if err != nil {
		logrus.Errorf("Error viewing services: %v", err)
		return
	}

	fmt.Println("\n=== SERVICES ===")
	fmt.Printf("%-5s %-25s %-10s %-10s %-8s %-12s %-10s\n", "ID", "Service Name", "Duration", "Price", "Active", "Appointments", "Revenue")
	fmt.Println(strings.Repeat("-", 80))
	for _, s := range svcs {
		active := "No"
		if s.IsActive {
			active = "Yes"
		}
		duration := fmt.Sprintf("%d min", s.EstimatedDuration)
		fmt.Printf("%-5d %-25s %-10s $%-9.2f %-8s %-12d $%-9.2f\n",
			s.ID, s.Name, duration, s.Price, active, s.AppointmentCount, s.TotalRevenue)
	}
	fmt.Printf("\nTotal services: %d\n", len(svcs))
}

func viewStatistics(db *gorm.DB) {
	var totalCustomers, newCustomers int64
	db.Table("customers").Count(&totalCustomers)
	db.Table("customers").
		Where("created_at >= ?", time.Now().AddDate(0, 0, -30)).
		Count(&newCustomers)

	var appt struct {
		TotalAppointments int
		Scheduled         int
		InProgress        int
		Completed         int
		Cancelled         int
	}
	err := db.Table("appointments").
		Select("COUNT(*) AS total_appointments, " +
			"COUNT(CASE WHEN status = 'scheduled' THEN 1 END) AS scheduled, " +
			"COUNT(CASE WHEN status = 'in_progress' THEN 1 END) AS in_progress, " +
			"COUNT(CASE WHEN status = 'completed' THEN 1 END) AS completed, " +
			"COUNT(CASE WHEN status = 'cancelled' THEN 1 END) AS cancelled").
		Scan(&appt).Error
	if err != nil {
		logrus.Errorf("Error viewing statistics: %v", err)
		return
	}

	var revenue struct {
		TotalRevenue          float64
		CompletedAppointments int
	}
	err = db.Table("appointments").
		Select("COALESCE(SUM(CASE WHEN appointments.status = 'completed' THEN services.price ELSE 0 END), 0) AS total_revenue, " +
			"COUNT(CASE WHEN appointments.status = 'completed' THEN 1 END) AS completed_appointments").
		Joins("JOIN services ON appointments.service_id = services.id").
		Scan(&revenue).Error
	if err != nil {
		logrus.Errorf("Error viewing statistics: %v", err)
		return
	}

	fmt.Println("\n=== DATABASE STATISTICS ===")
	fmt.Printf("Total Customers: %d\n", totalCustomers)
	fmt.Printf("New Customers (30 days): %d\n", newCustomers)
	fmt.Printf("Total Appointments: %d\n", appt.TotalAppointments)
	fmt.Printf("  - Scheduled: %d\n", appt.Scheduled)
	fmt.Printf("  - In Progress: %d\n", appt.InProgress)
	fmt.Printf("  - Completed: %d\n", appt.Completed)
	fmt.Printf("  - Cancelled: %d\n", appt.Cancelled)
	fmt.Printf("Total Revenue: $%.2f\n", revenue.TotalRevenue)
	fmt.Printf("Completed Services: %d\n", revenue.CompletedAppointments)
}
