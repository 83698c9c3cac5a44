package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"autoshop-backend/models"
)

func TestEditProfileUpdatesRecordAndSessionName(t *testing.T) {
	router, db := setupTestRouter(t)
	customer := seedCustomer(t, db, "Alice", "Walker", "alice@example.com", "secret1")

	tc := newTestClient(router)
	tc.mustLogin(t, "alice@example.com", "secret1")

	w := tc.postForm("/profile/edit", url.Values{
		"first_name": {"Alicia"},
		"last_name":  {"Walker-Smith"},
		"phone":      {"555-0123"},
		"address":    {"12 Oak Lane"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile", w.Header().Get("Location"))

	var reloaded models.Customer
	assert.NoError(t, db.First(&reloaded, customer.ID).Error)
	assert.Equal(t, "Alicia", reloaded.FirstName)
	assert.Equal(t, "Walker-Smith", reloaded.LastName)
	assert.Equal(t, "12 Oak Lane", reloaded.Address)
	assert.Equal(t, "alice@example.com", reloaded.Email, "email is not editable")

	// The landing page greets with the refreshed display name.
	w = tc.get("/")
	assert.Equal(t, http.StatusOK, w.Code)

	var page struct {
		CustomerName string `json:"customer_name"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, "Alicia Walker-Smith", page.CustomerName)
}

func TestEditProfileRequiresPhone(t *testing.T) {
	router, db := setupTestRouter(t)
	customer := seedCustomer(t, db, "Alice", "Walker", "alice@example.com", "secret1")

	tc := newTestClient(router)
	tc.mustLogin(t, "alice@example.com", "secret1")

	w := tc.postForm("/profile/edit", url.Values{
		"first_name": {"Alicia"},
		"last_name":  {"Walker"},
		"phone":      {""},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/edit", w.Header().Get("Location"))

	var reloaded models.Customer
	assert.NoError(t, db.First(&reloaded, customer.ID).Error)
	assert.Equal(t, "Alice", reloaded.FirstName, "record must not change on validation failure")
}

func TestProfileReturnsOwnRecordWithoutPassword(t *testing.T) {
	router, db := setupTestRouter(t)
	seedCustomer(t, db, "Alice", "Walker", "alice@example.com", "secret1")

	tc := newTestClient(router)
	tc.mustLogin(t, "alice@example.com", "secret1")

	w := tc.get("/profile")
	assert.Equal(t, http.StatusOK, w.Code)

	var raw map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))

	var customer map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw["customer"], &customer))
	assert.Equal(t, "alice@example.com", customer["email"])
	_, exposed := customer["password"]
	assert.False(t, exposed, "password hash must never be serialized")
}
