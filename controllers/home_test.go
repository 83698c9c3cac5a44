package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServicesListsActiveOnlyAlphabetically(t *testing.T) {
	router, db := setupTestRouter(t)
	seedService(t, db, "Tire Rotation", 29.99)
	seedService(t, db, "Brake Inspection", 79.99)
	retired := seedService(t, db, "Carburetor Tune", 59.99)
	db.Model(&retired).Update("is_active", false)

	tc := newTestClient(router)
	w := tc.get("/services")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Services []struct {
			Name string `json:"name"`
		} `json:"services"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	if assert.Len(t, resp.Services, 2) {
		assert.Equal(t, "Brake Inspection", resp.Services[0].Name)
		assert.Equal(t, "Tire Rotation", resp.Services[1].Name)
	}
}

func TestIndexAnonymousHasNoCustomerName(t *testing.T) {
	router, _ := setupTestRouter(t)

	tc := newTestClient(router)
	w := tc.get("/")
	assert.Equal(t, http.StatusOK, w.Code)

	var page map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	_, present := page["customer_name"]
	assert.False(t, present)
}
