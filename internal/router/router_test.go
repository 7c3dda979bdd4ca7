package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/config"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/seed"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/store"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/worker"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env:                "test",
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    2,
		ScanHistoryLimit:   10,
	}
	st := store.New()
	require.NoError(t, seed.Load(st))
	return New(cfg, st, worker.NewDispatcher())
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"username": username,
		"password": seed.DemoPassword,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestHealth(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(t, r, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"username": "staff",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(t, r, http.MethodGet, "/v1/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleGating(t *testing.T) {
	r := setupRouter(t)
	staff := login(t, r, "staff")
	admin := login(t, r, "admin")

	// staff can read the catalog but not manage users
	assert.Equal(t, http.StatusOK, doJSON(t, r, http.MethodGet, "/v1/products", staff, nil).Code)
	assert.Equal(t, http.StatusForbidden, doJSON(t, r, http.MethodGet, "/v1/users", staff, nil).Code)

	assert.Equal(t, http.StatusOK, doJSON(t, r, http.MethodGet, "/v1/users", admin, nil).Code)
}

func TestMovementFlow(t *testing.T) {
	r := setupRouter(t)
	staff := login(t, r, "staff")

	// Seeded product 1 starts with 24 new in stock.
	w := doJSON(t, r, http.MethodPost, "/v1/inventory/movements", staff, map[string]interface{}{
		"product_id": "1",
		"type":       "out",
		"quantity":   4,
		"condition":  "new",
		"reason":     "sale",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Product struct {
			CurrentStock int `json:"current_stock"`
		} `json:"product"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 23, resp.Product.CurrentStock)

	// Over-draining the bucket is a conflict, not a validation error.
	w = doJSON(t, r, http.MethodPost, "/v1/inventory/movements", staff, map[string]interface{}{
		"product_id": "1",
		"type":       "out",
		"quantity":   9999,
		"condition":  "new",
		"reason":     "sale",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// A reason outside the stock-out set is rejected up front.
	w = doJSON(t, r, http.MethodPost, "/v1/inventory/movements", staff, map[string]interface{}{
		"product_id": "1",
		"type":       "out",
		"quantity":   1,
		"condition":  "new",
		"reason":     "purchase",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProductRequiresManager(t *testing.T) {
	r := setupRouter(t)
	staff := login(t, r, "staff")
	manager := login(t, r, "manager")

	// Resolve a category and location id from master data.
	w := doJSON(t, r, http.MethodGet, "/v1/masters/category", staff, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var categories []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.NotEmpty(t, categories)

	w = doJSON(t, r, http.MethodGet, "/v1/masters/location", staff, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var locations []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &locations))
	require.NotEmpty(t, locations)

	body := map[string]interface{}{
		"sku":                 "AST-0099",
		"name":                "Villain Acrylic Stand",
		"category_id":         categories[0].ID,
		"storage_location_id": locations[0].ID,
		"price":               "1650",
		"min_stock":           5,
		"stock_breakdown":     map[string]int{"new": 12},
	}

	assert.Equal(t, http.StatusForbidden, doJSON(t, r, http.MethodPost, "/v1/products", staff, body).Code)

	w = doJSON(t, r, http.MethodPost, "/v1/products", manager, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID           string `json:"id"`
		CurrentStock int    `json:"current_stock"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 12, created.CurrentStock)

	w = doJSON(t, r, http.MethodGet, "/v1/products/sku/AST-0099", staff, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestScanResolveAndHistory(t *testing.T) {
	r := setupRouter(t)
	staff := login(t, r, "staff")

	w := doJSON(t, r, http.MethodPost, "/v1/scan/resolve", staff, map[string]string{
		"payload": `{"type":"product","id":"1"}`,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/v1/scan/history", staff, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history []json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Len(t, history, 1)

	// A payload with the wrong type discriminator is unprocessable.
	w = doJSON(t, r, http.MethodPost, "/v1/scan/resolve", staff, map[string]string{
		"payload": `{"type":"widget","id":"1"}`,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	require.Equal(t, http.StatusNoContent, doJSON(t, r, http.MethodDelete, "/v1/scan/history", staff, nil).Code)
	w = doJSON(t, r, http.MethodGet, "/v1/scan/history", staff, nil)
	history = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Empty(t, history)
}

func TestAlertsIncludeSeededConditions(t *testing.T) {
	r := setupRouter(t)
	staff := login(t, r, "staff")

	w := doJSON(t, r, http.MethodGet, "/v1/inventory/alerts", staff, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var alerts []struct {
		Type      string `json:"type"`
		ProductID string `json:"product_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alerts))

	byKey := map[string]bool{}
	for _, a := range alerts {
		byKey[fmt.Sprintf("%s:%s", a.Type, a.ProductID)] = true
	}
	// Seeded fixtures: product 2 is low on stock and ends sales soon,
	// product 3 is low, product 4 is out of stock.
	assert.True(t, byKey["low_stock:2"], "alerts: %v", byKey)
	assert.True(t, byKey["expiring:2"], "alerts: %v", byKey)
	assert.True(t, byKey["low_stock:3"], "alerts: %v", byKey)
	assert.True(t, byKey["low_stock:4"], "alerts: %v", byKey)
}
