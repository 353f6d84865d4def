package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"billing-manager-backend/internal/config"
	"billing-manager-backend/internal/models"
	"billing-manager-backend/internal/routes"
)

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Client{}, &models.Service{}, &models.Invoice{}))

	cfg := config.Load()
	r := gin.New()
	routes.RegisterRoutes(r, db, cfg, zap.NewNop())
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// assertAmount compares a decimal JSON field (serialized as a string) by value,
// since arithmetic can leave trailing zeros like "110.0".
func assertAmount(t *testing.T, record map[string]any, field, want string) {
	t.Helper()
	raw, ok := record[field].(string)
	require.True(t, ok, "field %s missing or not a string: %v", field, record[field])
	got, err := decimal.NewFromString(raw)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "%s = %s, want %s", field, got, want)
}

func invoiceBody() map[string]any {
	return map[string]any{
		"clientId":  1,
		"status":    "sent",
		"issueDate": time.Now().Format(time.RFC3339),
		"dueDate":   time.Now().AddDate(0, 1, 0).Format(time.RFC3339),
		"lineItems": []map[string]any{
			{"description": "Web Design", "quantity": 10, "rate": 10},
		},
	}
}

func TestClientCRUDOverHTTP(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/clients", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/clients", map[string]any{
		"name":    "Sarah Mitchell",
		"company": "Mitchell Design Co",
		"email":   "sarah@mitchelldesign.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)
	assert.Equal(t, float64(1), created["Id"])

	w = doJSON(t, r, http.MethodPost, "/clients", map[string]any{"company": "No Name LLC"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "name is required")

	w = doJSON(t, r, http.MethodDelete, "/clients/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/clients/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateInvoiceOverHTTP(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/invoices", invoiceBody())
	require.Equal(t, http.StatusCreated, w.Code)

	created := decode(t, w)
	assert.Equal(t, "INV-001", created["invoiceNumber"])
	assertAmount(t, created, "subtotal", "100")
	assertAmount(t, created, "total", "110")
	assertAmount(t, created, "remainingBalance", "110")

	w = doJSON(t, r, http.MethodPost, "/invoices", map[string]any{"clientId": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code, "line items are required")
}

func TestRecordPaymentOverHTTP(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/invoices", invoiceBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/invoices/1/payments", map[string]any{
		"amount":        50,
		"paymentMethod": "bank_transfer",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode(t, w)
	assert.Equal(t, "partially_paid", updated["status"])
	assertAmount(t, updated, "totalPaid", "50")
	assertAmount(t, updated, "remainingBalance", "60")

	// Overpayment is rejected with no state change.
	w = doJSON(t, r, http.MethodPost, "/invoices/1/payments", map[string]any{"amount": 70})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/invoices/1/payments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, float64(1), history[0]["Id"])

	w = doJSON(t, r, http.MethodGet, "/invoices/1/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode(t, w)
	assertAmount(t, summary, "paymentPercentage", "45.45")
	assert.Equal(t, false, summary["isFullyPaid"])
	assert.Equal(t, true, summary["isPartiallyPaid"])

	w = doJSON(t, r, http.MethodPost, "/invoices/999/payments", map[string]any{"amount": 10})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvoiceStatusFilterOverHTTP(t *testing.T) {
	r := setupRouter(t)

	draft := invoiceBody()
	draft["status"] = "draft"
	w := doJSON(t, r, http.MethodPost, "/invoices", draft)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/invoices", invoiceBody())
	require.Equal(t, http.StatusCreated, w.Code)

	for query, want := range map[string]int{"": 2, "?status=draft": 1, "?status=paid": 0} {
		w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/invoices%s", query), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Len(t, list, want, "query %q", query)
	}
}
