package order_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/windsor-dist/storefront-api/internal/order"
)

func newRouter(st *order.Store) *chi.Mux {
	handler := &order.Handler{Store: st, Validate: validator.New()}
	r := chi.NewRouter()
	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Get("/{orderID}", handler.Detail)
		r.Post("/{orderID}/status", handler.Advance)
	})
	return r
}

func TestListAndDetailOverHTTP(t *testing.T) {
	st := order.NewStore().WithNow(fixedNow)
	created := st.Create(sampleItems(), sampleSummary(), "")
	router := newRouter(st)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "1", rec.Header().Get("X-Total-Count"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+created.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data order.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "ORD-2026-001", envelope.Data.OrderNumber)
	require.EqualValues(t, 24268, envelope.Data.Pricing.Total)
}

func TestDetailUnknownOrderReturns404(t *testing.T) {
	router := newRouter(order.NewStore())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdvanceOverHTTP(t *testing.T) {
	st := order.NewStore().WithNow(fixedNow)
	created := st.Create(sampleItems(), sampleSummary(), "")
	router := newRouter(st)

	body, _ := json.Marshal(map[string]string{"status": "payment_confirmed", "description": "bank transfer verified"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/orders/"+created.ID+"/status", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data order.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, order.StatusPaymentConfirmed, envelope.Data.Status)

	body, _ = json.Marshal(map[string]string{"status": "delivered"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/orders/"+created.ID+"/status", bytes.NewReader(body)))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "INVALID_STATUS_TRANSITION")
}
