package quote

import (
	"encoding/json"
	"errors"
	"net/http"

	validator "github.com/go-playground/validator/v10"

	"github.com/windsor-dist/storefront-api/internal/catalog"
	"github.com/windsor-dist/storefront-api/internal/common"
	"github.com/windsor-dist/storefront-api/internal/obs"
	"github.com/windsor-dist/storefront-api/internal/pricing"
)

// ProductSource resolves catalog records for quoting.
type ProductSource interface {
	Product(id string) (catalog.Product, bool)
}

// Handler prices a single configuration without touching a cart. The
// configurator calls it on every slider move, so it is read-only and cheap.
type Handler struct {
	Catalog  ProductSource
	Validate *validator.Validate
}

type quoteRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	WidthCm   float64 `json:"widthCm" validate:"gte=0"`
	HeightCm  float64 `json:"heightCm" validate:"gte=0"`
	ColorID   string  `json:"colorId"`
	GlassID   string  `json:"glassId"`
	Quantity  int     `json:"quantity" validate:"gte=0"`
}

type quoteResponse struct {
	ProductID  string          `json:"productId"`
	Verdict    pricing.Verdict `json:"verdict"`
	Quote      pricing.Quote   `json:"quote"`
	Quantity   int             `json:"quantity"`
	TotalPrice pricing.Money   `json:"totalPrice"`
}

// Price handles POST /api/v1/quotes.
func (h *Handler) Price(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON payload", nil)
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "payload validation failed", err.Error())
			return
		}
	}
	product, ok := h.Catalog.Product(req.ProductID)
	if !ok {
		h.writeError(w, catalog.ErrNotFound)
		return
	}

	cfg := pricing.Configuration{
		WidthCm:  req.WidthCm,
		HeightCm: req.HeightCm,
		ColorID:  req.ColorID,
		GlassID:  req.GlassID,
	}
	qty := req.Quantity
	if qty < 1 {
		qty = 1
	}

	verdict := pricing.Validate(product.Constraints, cfg)
	q := pricing.ComputeQuote(product.BasePrice, product.Constraints, cfg)
	if obs.QuotesTotal != nil {
		obs.QuotesTotal.Inc()
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": quoteResponse{
		ProductID:  product.ID,
		Verdict:    verdict,
		Quote:      q,
		Quantity:   qty,
		TotalPrice: q.UnitPrice * pricing.Money(qty),
	}})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		common.JSONError(w, http.StatusNotFound, "PRODUCT_NOT_FOUND", "product not found", nil)
	default:
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unexpected error", nil)
	}
}
