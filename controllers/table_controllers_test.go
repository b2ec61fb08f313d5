package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/rakhadenta/restaurant-booking/booking"
	"github.com/rakhadenta/restaurant-booking/router"
	"github.com/rakhadenta/restaurant-booking/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupTestServer() (*booking.Restaurant, *gin.Engine) {
	rest := booking.NewRestaurant("Ocean Breeze", "123 Harbor Road")
	booking.SeedDemo(rest)
	return rest, router.SetupRouter(rest, "")
}

func doJSON(t *testing.T, r *gin.Engine, method, url string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	return doJSONHeaders(t, r, method, url, body, nil)
}

func doJSONHeaders(t *testing.T, r *gin.Engine, method, url string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var response map[string]interface{}
	if len(w.Body.Bytes()) > 0 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	}
	return w, response
}

func TestCreateTable(t *testing.T) {
	_, r := setupTestServer()

	w, response := doJSON(t, r, "POST", "/api/tables", gin.H{"id": 4, "seats": 2, "label": "Bar"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Table created successfully", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(4), data["id"])
	assert.Equal(t, "free", data["status"])
}

func TestCreateTableDuplicateID(t *testing.T) {
	_, r := setupTestServer()

	w, response := doJSON(t, r, "POST", "/api/tables", gin.H{"id": 1, "seats": 2})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, response["message"], "already exists")
}

func TestCreateTableConcurrentDuplicateIDs(t *testing.T) {
	_, r := setupTestServer()

	var created int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w, _ := doJSON(t, r, "POST", "/api/tables", gin.H{"id": 9, "seats": 2})
			if w.Code == http.StatusCreated {
				atomic.AddInt32(&created, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), created)
	w, response := doJSON(t, r, "GET", "/api/tables", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := response["data"].([]interface{})
	assert.Len(t, data, 4)
}

func TestGetAllTables(t *testing.T) {
	_, r := setupTestServer()

	w, response := doJSON(t, r, "GET", "/api/tables", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := response["data"].([]interface{})
	assert.Len(t, data, 3)
}

func TestGetAvailableTablesBestFitOrder(t *testing.T) {
	_, r := setupTestServer()

	w, response := doJSON(t, r, "GET", "/api/tables/available?party_size=2", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := response["data"].([]interface{})
	assert.Len(t, data, 3)
	first := data[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, float64(2), first["seats"])
}

func TestGetAvailableTablesNoneFit(t *testing.T) {
	_, r := setupTestServer()

	w, response := doJSON(t, r, "GET", "/api/tables/available?party_size=99", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	// An empty result still ships as "data": [], never a missing field.
	data, ok := response["data"].([]interface{})
	assert.True(t, ok)
	assert.Empty(t, data)
}

func TestUpdateTableStatusOutOfService(t *testing.T) {
	rest, r := setupTestServer()

	w, response := doJSON(t, r, "PATCH", "/api/tables/3/status", gin.H{"status": "out_of_service"})

	assert.Equal(t, http.StatusOK, w.Code)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "out_of_service", data["status"])
	assert.Empty(t, rest.AvailableTables(5))
}

func TestUpdateTableStatusUnknownTable(t *testing.T) {
	_, r := setupTestServer()

	w, _ := doJSON(t, r, "PATCH", "/api/tables/42/status", gin.H{"status": "free"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTableStatusRejectsUnknownStatus(t *testing.T) {
	_, r := setupTestServer()

	w, response := doJSON(t, r, "PATCH", "/api/tables/1/status", gin.H{"status": "sparkling"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, response["message"], "unknown table status")
}
