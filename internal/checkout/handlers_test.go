package checkout_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/windsor-dist/storefront-api/internal/cart"
	"github.com/windsor-dist/storefront-api/internal/checkout"
	"github.com/windsor-dist/storefront-api/internal/order"
	"github.com/windsor-dist/storefront-api/internal/pricing"
)

func TestPlaceOrderOverHTTP(t *testing.T) {
	svc, carts := newCheckout(t)
	handler := &checkout.Handler{Service: svc, Validate: validator.New()}
	r := chi.NewRouter()
	r.Post("/api/v1/checkout", handler.PlaceOrder)

	c, err := carts.CreateCart()
	require.NoError(t, err)
	_, _, err = carts.AddItem(c.ID, cart.AddItemInput{
		ProductID:     "prod-001",
		Configuration: pricing.Configuration{WidthCm: 120, HeightCm: 200, ColorID: "white", GlassID: "tempered-5mm"},
		Quantity:      1,
	})
	require.NoError(t, err)

	body, _ := json.Marshal(map[string]string{"cartId": c.ID})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Data order.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "ORD-2025-001", envelope.Data.OrderNumber)

	// Checking out the now-empty cart again is rejected.
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(body)))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "EMPTY_CART")
}

func TestPlaceOrderMissingCartIDReturns400(t *testing.T) {
	svc, _ := newCheckout(t)
	handler := &checkout.Handler{Service: svc, Validate: validator.New()}
	r := chi.NewRouter()
	r.Post("/api/v1/checkout", handler.PlaceOrder)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader([]byte(`{}`))))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
