package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/windsor-dist/storefront-api/internal/catalog"
)

type listResponse struct {
	Data       []catalog.ListItem `json:"data"`
	Pagination struct {
		Page       int `json:"page"`
		PerPage    int `json:"per_page"`
		TotalItems int `json:"total_items"`
	} `json:"pagination"`
}

type detailResponse struct {
	Data catalog.Product `json:"data"`
}

func TestProductsHandler(t *testing.T) {
	handler := catalog.NewHandler(newService(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?category=door&sort=price_asc&limit=10", nil)
	rec := httptest.NewRecorder()
	handler.Products(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "2", rec.Header().Get("X-Total-Count"))

	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	require.Equal(t, "WIN-SLD-8842", resp.Data[0].SKU)
	require.Equal(t, 2, resp.Pagination.TotalItems)
}

func TestProductsHandlerBadFilter(t *testing.T) {
	handler := catalog.NewHandler(newService(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?minPrice=cheap", nil)
	rec := httptest.NewRecorder()
	handler.Products(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductDetailHandler(t *testing.T) {
	handler := catalog.NewHandler(newService(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/prod-001", nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", "prod-001")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
	rec := httptest.NewRecorder()
	handler.ProductDetail(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp detailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Signature Sliding Door", resp.Data.Name)
	require.NotNil(t, resp.Data.Constraints)
	require.EqualValues(t, 12500, resp.Data.BasePrice)
}

func TestProductDetailHandlerNotFound(t *testing.T) {
	handler := catalog.NewHandler(newService(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/prod-404", nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", "prod-404")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
	rec := httptest.NewRecorder()
	handler.ProductDetail(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
