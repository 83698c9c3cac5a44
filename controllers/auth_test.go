package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"autoshop-backend/models"
)

func TestRegisterCreatesCustomerAndLogsIn(t *testing.T) {
	router, db := setupTestRouter(t)
	tc := newTestClient(router)

	w := tc.register("Alice", "Walker", "alice@example.com", "secret1")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	var customer models.Customer
	err := db.Where("email = ?", "alice@example.com").First(&customer).Error
	assert.NoError(t, err)
	assert.Equal(t, "Alice", customer.FirstName)
	assert.NotEqual(t, "secret1", customer.Password, "password must be stored hashed")

	// The session established during registration grants dashboard access.
	w = tc.get("/dashboard")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	router, db := setupTestRouter(t)

	first := newTestClient(router)
	first.register("Alice", "Walker", "alice@example.com", "secret1")

	second := newTestClient(router)
	w := second.register("Mallory", "Evans", "alice@example.com", "different1")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/register", w.Header().Get("Location"))

	var count int64
	db.Model(&models.Customer{}).Where("email = ?", "alice@example.com").Count(&count)
	assert.Equal(t, int64(1), count, "duplicate registration must not create a row")
}

func TestRegisterRejectsPasswordMismatch(t *testing.T) {
	router, db := setupTestRouter(t)
	tc := newTestClient(router)

	w := tc.postForm("/register", url.Values{
		"first_name":       {"Alice"},
		"last_name":        {"Walker"},
		"email":            {"alice@example.com"},
		"password":         {"secret1"},
		"confirm_password": {"secret2"},
		"phone":            {"555-0100"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/register", w.Header().Get("Location"))

	var count int64
	db.Model(&models.Customer{}).Count(&count)
	assert.Zero(t, count)
}

func TestLoginWithWrongPasswordLeavesNoSession(t *testing.T) {
	router, db := setupTestRouter(t)
	seedCustomer(t, db, "Alice", "Walker", "alice@example.com", "secret1")

	tc := newTestClient(router)
	w := tc.login("alice@example.com", "wrongpass")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// No session was established, so the dashboard bounces to the login page.
	w = tc.get("/dashboard")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLoginWithUnknownEmailUsesGenericMessage(t *testing.T) {
	router, _ := setupTestRouter(t)
	tc := newTestClient(router)

	w := tc.login("nobody@example.com", "whatever")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = tc.get("/login")
	assert.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Flashes []struct {
			Category string `json:"category"`
			Message  string `json:"message"`
		} `json:"flashes"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	if assert.Len(t, page.Flashes, 1) {
		assert.Equal(t, "error", page.Flashes[0].Category)
		assert.Equal(t, "Invalid email or password.", page.Flashes[0].Message)
	}
}

func TestLoginReturnsTokenForJSONClients(t *testing.T) {
	router, db := setupTestRouter(t)
	seedCustomer(t, db, "Alice", "Walker", "alice@example.com", "secret1")

	form := url.Values{
		"email":    {"alice@example.com"},
		"password": {"secret1"},
	}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	// The bearer token alone authenticates API requests.
	req = httptest.NewRequest(http.MethodGet, "/api/my-vehicles", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogoutClearsSession(t *testing.T) {
	router, _ := setupTestRouter(t)
	tc := newTestClient(router)
	tc.register("Alice", "Walker", "alice@example.com", "secret1")

	w := tc.get("/logout")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = tc.get("/dashboard")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
