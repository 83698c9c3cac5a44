package controllers_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"autoshop-backend/config"
	"autoshop-backend/models"
	"autoshop-backend/routes"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("JWT_SECRET", "test-secret")

	// One shared in-memory database per test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := models.AutoMigrate(testDB); err != nil {
		t.Fatalf("failed to auto-migrate models: %v", err)
	}

	originalDB := config.DB
	config.SetTestDB(testDB)
	t.Cleanup(func() {
		config.SetTestDB(originalDB)
	})

	return routes.SetupRouter(), testDB
}

// testClient replays session cookies across requests the way a browser
// would.
type testClient struct {
	router  *gin.Engine
	cookies map[string]*http.Cookie
}

func newTestClient(router *gin.Engine) *testClient {
	return &testClient{router: router, cookies: make(map[string]*http.Cookie)}
}

func (tc *testClient) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range tc.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	tc.router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		tc.cookies[c.Name] = c
	}
	return w
}

func (tc *testClient) get(path string) *httptest.ResponseRecorder {
	return tc.do(http.MethodGet, path, nil)
}

func (tc *testClient) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	return tc.do(http.MethodPost, path, form)
}

func (tc *testClient) register(firstName, lastName, email, password string) *httptest.ResponseRecorder {
	return tc.postForm("/register", url.Values{
		"first_name":       {firstName},
		"last_name":        {lastName},
		"email":            {email},
		"password":         {password},
		"confirm_password": {password},
		"phone":            {"555-0100"},
	})
}

func (tc *testClient) login(email, password string) *httptest.ResponseRecorder {
	return tc.postForm("/login", url.Values{
		"email":    {email},
		"password": {password},
	})
}

// mustLogin authenticates and drains the welcome flash so tests can make
// exact assertions about their own notices.
func (tc *testClient) mustLogin(t *testing.T, email, password string) {
	t.Helper()
	w := tc.login(email, password)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("login as %s failed: status %d, location %q",
			email, w.Code, w.Header().Get("Location"))
	}
	tc.get("/dashboard")
}

func (tc *testClient) adminLogin() *httptest.ResponseRecorder {
	return tc.postForm("/admin/login", url.Values{
		"username": {"admin"},
		"password": {"admin123"},
	})
}

func seedCustomer(t *testing.T, db *gorm.DB, firstName, lastName, email, password string) models.Customer {
	t.Helper()
	customer := models.Customer{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		Phone:     "555-0199",
	}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	return customer
}

func seedVehicle(t *testing.T, db *gorm.DB, customerID uint, make, model string, year int) models.Vehicle {
	t.Helper()
	vehicle := models.Vehicle{
		CustomerID: customerID,
		Make:       make,
		Model:      model,
		Year:       year,
	}
	if err := db.Create(&vehicle).Error; err != nil {
		t.Fatalf("failed to seed vehicle: %v", err)
	}
	return vehicle
}

func seedService(t *testing.T, db *gorm.DB, name string, price float64) models.Service {
	t.Helper()
	service := models.Service{
		Name:              name,
		EstimatedDuration: 30,
		Price:             price,
		IsActive:          true,
	}
	if err := db.Create(&service).Error; err != nil {
		t.Fatalf("failed to seed service: %v", err)
	}
	return service
}

func seedAppointment(t *testing.T, db *gorm.DB, customerID, vehicleID, serviceID uint, status models.AppointmentStatus) models.Appointment {
	t.Helper()
	appointment := models.Appointment{
		CustomerID:      customerID,
		VehicleID:       vehicleID,
		ServiceID:       serviceID,
		AppointmentDate: "2030-06-01",
		AppointmentTime: "09:00",
		Status:          status,
		Notes:           "seeded",
	}
	if err := db.Create(&appointment).Error; err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}
	return appointment
}
