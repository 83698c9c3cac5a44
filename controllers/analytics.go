// controllers/analytics.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"autoshop-backend/config"
	"autoshop-backend/models"
	"autoshop-backend/utils"
)

// AnalyticsController holds the fixed set of named aggregate queries the
// admin pages consume. Each query returns typed rows and takes only bound
// parameters.
type AnalyticsController struct{}

type MonthlyTrendRow struct {
	Month            string  `json:"month"`
	AppointmentCount int     `json:"appointment_count"`
	Revenue          float64 `json:"revenue"`
}

type ServicePopularityRow struct {
	Name             string  `json:"name"`
	AppointmentCount int     `json:"appointment_count"`
	Revenue          float64 `json:"revenue"`
}

type StatusCountRow struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type TopCustomerRow struct {
	CustomerName     string  `json:"customer_name"`
	AppointmentCount int     `json:"appointment_count"`
	TotalSpent       float64 `json:"total_spent"`
}

type MakeCountRow struct {
	Make  string `json:"make"`
	Count int    `json:"count"`
}

type HourCountRow struct {
	Hour  string `json:"hour"`
	Count int    `json:"count"`
}

type WeekdayCountRow struct {
	DayOfWeek string `json:"day_of_week"`
	Count     int    `json:"count"`
}

// monthlyTrend counts appointments and sums booked revenue per month for
// the trailing twelve months. Dates are stored as 2006-01-02 text, so the
// month bucket is a substring.
func (ac *AnalyticsController) monthlyTrend() ([]MonthlyTrendRow, error) {
	since := time.Now().AddDate(0, -12, 0).Format("2006-01-02")
	var rows []MonthlyTrendRow
	err := config.DB.Table("appointments").
		Select("substr(appointments.appointment_date, 1, 7) AS month, "+
			"COUNT(*) AS appointment_count, "+
			"COALESCE(SUM(services.price), 0) AS revenue").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.appointment_date >= ?", since).
		Group("substr(appointments.appointment_date, 1, 7)").
		Order("month").
		Scan(&rows).Error
	return rows, err
}

func (ac *AnalyticsController) servicePopularity(limit int) ([]ServicePopularityRow, error) {
	var rows []ServicePopularityRow
	err := config.DB.Table("services").
		Select("services.name, "+
			"COUNT(appointments.id) AS appointment_count, "+
			"COALESCE(SUM(CASE WHEN appointments.status = 'completed' THEN services.price ELSE 0 END), 0) AS revenue").
		Joins("LEFT JOIN appointments ON services.id = appointments.service_id").
		Group("services.id, services.name").
		Order("appointment_count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (ac *AnalyticsController) statusDistribution() ([]StatusCountRow, error) {
	var rows []StatusCountRow
	err := config.DB.Model(&models.Appointment{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (ac *AnalyticsController) topCustomers(limit int) ([]TopCustomerRow, error) {
	var rows []TopCustomerRow
	err := config.DB.Table("customers").
		Select("customers.first_name || ' ' || customers.last_name AS customer_name, "+
			"COUNT(appointments.id) AS appointment_count, "+
			"COALESCE(SUM(CASE WHEN appointments.status = 'completed' THEN services.price ELSE 0 END), 0) AS total_spent").
		Joins("LEFT JOIN appointments ON customers.id = appointments.customer_id").
		Joins("LEFT JOIN services ON appointments.service_id = services.id").
		Group("customers.id, customers.first_name, customers.last_name").
		Having("SUM(CASE WHEN appointments.status = 'completed' THEN services.price ELSE 0 END) > 0").
		Order("total_spent DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (ac *AnalyticsController) vehicleMakes(limit int) ([]MakeCountRow, error) {
	var rows []MakeCountRow
	err := config.DB.Model(&models.Vehicle{}).
		Select("make, COUNT(*) AS count").
		Group("make").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (ac *AnalyticsController) appointmentHours() ([]HourCountRow, error) {
	var rows []HourCountRow
	err := config.DB.Model(&models.Appointment{}).
		Select("substr(appointment_time, 1, 2) AS hour, COUNT(*) AS count").
		Group("substr(appointment_time, 1, 2)").
		Order("hour").
		Scan(&rows).Error
	return rows, err
}

// weeklyDistribution buckets appointments per weekday. The weekday is
// derived in Go so the query stays portable across the two drivers.
func (ac *AnalyticsController) weeklyDistribution() ([]WeekdayCountRow, error) {
	var dates []string
	err := config.DB.Model(&models.Appointment{}).
		Pluck("appointment_date", &dates).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[time.Weekday]int)
	for _, d := range dates {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			continue
		}
		counts[t.Weekday()]++
	}

	rows := make([]WeekdayCountRow, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if counts[wd] == 0 {
			continue
		}
		rows = append(rows, WeekdayCountRow{DayOfWeek: wd.String(), Count: counts[wd]})
	}
	return rows, nil
}

// AdminChartData serves every aggregate the admin charts need in one
// response, recomputed from full scans per request.
func (ac *AnalyticsController) AdminChartData(c *gin.Context) {
	monthly, err := ac.monthlyTrend()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get monthly trend")
		return
	}
	popularity, err := ac.servicePopularity(10)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get service popularity")
		return
	}
	statuses, err := ac.statusDistribution()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get status distribution")
		return
	}
	customers, err := ac.topCustomers(10)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get top customers")
		return
	}
	makes, err := ac.vehicleMakes(10)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get vehicle makes")
		return
	}
	hours, err := ac.appointmentHours()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get appointment hours")
		return
	}
	weekly, err := ac.weeklyDistribution()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get weekly distribution")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"monthly_appointments": monthly,
		"service_popularity":   popularity,
		"appointment_status":   statuses,
		"top_customers":        customers,
		"vehicle_makes":        makes,
		"appointment_hours":    hours,
		"weekly_appointments":  weekly,
	})
}

// AdminAnalytics renders the chart page: service popularity as a bar chart
// and vehicle makes as a donut, drawn by go-echarts.
func (ac *AnalyticsController) AdminAnalytics(c *gin.Context) {
	popularity, err := ac.servicePopularity(10)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get service popularity")
		return
	}
	makes, err := ac.vehicleMakes(10)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get vehicle makes")
		return
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Most Popular Services"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Appointments"}),
	)
	names := make([]string, 0, len(popularity))
	barData := make([]opts.BarData, 0, len(popularity))
	for _, row := range popularity {
		names = append(names, row.Name)
		barData = append(barData, opts.BarData{Value: row.AppointmentCount})
	}
	bar.SetXAxis(names).AddSeries("Appointments", barData)

	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Customer Vehicle Brands"}))
	pieData := make([]opts.PieData, 0, len(makes))
	for _, row := range makes {
		pieData = append(pieData, opts.PieData{Name: row.Make, Value: row.Count})
	}
	pie.AddSeries("Makes", pieData).
		SetSeriesOptions(charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "70%"}}))

	page := components.NewPage()
	page.AddCharts(bar, pie)

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(c.Writer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to render charts")
	}
}
