package quote_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/windsor-dist/storefront-api/internal/catalog"
	"github.com/windsor-dist/storefront-api/internal/pricing"
	"github.com/windsor-dist/storefront-api/internal/quote"
)

type staticCatalog struct {
	products map[string]catalog.Product
}

func (s staticCatalog) Product(id string) (catalog.Product, bool) {
	p, ok := s.products[id]
	return p, ok
}

func newRouter() *chi.Mux {
	products := map[string]catalog.Product{}
	for _, p := range catalog.SeedProducts() {
		products[p.ID] = p
	}
	handler := &quote.Handler{Catalog: staticCatalog{products: products}, Validate: validator.New()}
	r := chi.NewRouter()
	r.Post("/api/v1/quotes", handler.Price)
	return r
}

type quoteEnvelope struct {
	Data struct {
		ProductID  string          `json:"productId"`
		Verdict    pricing.Verdict `json:"verdict"`
		Quote      pricing.Quote   `json:"quote"`
		Quantity   int             `json:"quantity"`
		TotalPrice pricing.Money   `json:"totalPrice"`
	} `json:"data"`
}

func postQuote(t *testing.T, router http.Handler, body map[string]any) (*httptest.ResponseRecorder, quoteEnvelope) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/quotes", bytes.NewReader(raw)))
	var envelope quoteEnvelope
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	}
	return rec, envelope
}

func TestQuoteSlidingDoorBreakdown(t *testing.T) {
	router := newRouter()
	rec, envelope := postQuote(t, router, map[string]any{
		"productId": "prod-001",
		"widthCm":   120,
		"heightCm":  200,
		"colorId":   "white",
		"glassId":   "tempered-5mm",
		"quantity":  2,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, envelope.Data.Verdict.Valid)
	require.InDelta(t, 2.4, envelope.Data.Quote.AreaSqm, 1e-9)
	require.EqualValues(t, 9450, envelope.Data.Quote.PricePerSqm)
	require.EqualValues(t, 22680, envelope.Data.Quote.UnitPrice)
	require.EqualValues(t, 45360, envelope.Data.TotalPrice)
}

func TestQuoteInvalidConfigurationStillPrices(t *testing.T) {
	router := newRouter()
	rec, envelope := postQuote(t, router, map[string]any{
		"productId": "prod-001",
		"widthCm":   30,
		"heightCm":  200,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.False(t, envelope.Data.Verdict.Valid)
	require.Contains(t, envelope.Data.Verdict.Reasons, pricing.ReasonWidthOutOfRange)
}

func TestQuoteMissingDimensionsFallsBackToBasePrice(t *testing.T) {
	router := newRouter()
	rec, envelope := postQuote(t, router, map[string]any{"productId": "prod-001"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, envelope.Data.Quote.BasePriceOnly)
	require.EqualValues(t, 12500, envelope.Data.Quote.UnitPrice)
}

func TestQuoteUnknownProduct(t *testing.T) {
	router := newRouter()
	rec, _ := postQuote(t, router, map[string]any{"productId": "nope", "widthCm": 100, "heightCm": 100})
	require.Equal(t, http.StatusNotFound, rec.Code)
}
