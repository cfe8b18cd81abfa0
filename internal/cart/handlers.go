package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"

	"github.com/windsor-dist/storefront-api/internal/catalog"
	"github.com/windsor-dist/storefront-api/internal/common"
	"github.com/windsor-dist/storefront-api/internal/discount"
	"github.com/windsor-dist/storefront-api/internal/events"
	"github.com/windsor-dist/storefront-api/internal/obs"
	"github.com/windsor-dist/storefront-api/internal/pricing"
)

// Handler exposes cart endpoints.
type Handler struct {
	Service  *Service
	Validate *validator.Validate
	Events   *events.Bus
}

type addItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	WidthCm   float64 `json:"widthCm" validate:"gte=0"`
	HeightCm  float64 `json:"heightCm" validate:"gte=0"`
	ColorID   string  `json:"colorId"`
	GlassID   string  `json:"glassId"`
	Quantity  int     `json:"quantity" validate:"gte=0"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

type discountRequest struct {
	Code string `json:"code" validate:"required"`
}

type cartResponse struct {
	Cart    Cart            `json:"cart"`
	Summary pricing.Summary `json:"summary"`
}

// Create handles POST /api/v1/carts.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.CreateCart()
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{"data": cartResponse{Cart: c, Summary: pricing.Summary{}}})
}

// Get handles GET /api/v1/carts/{cartID}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	c, summary, err := h.Service.Get(chi.URLParam(r, "cartID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": cartResponse{Cart: c, Summary: summary}})
}

// AddItem handles POST /api/v1/carts/{cartID}/items.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, summary, err := h.Service.AddItem(chi.URLParam(r, "cartID"), AddItemInput{
		ProductID: req.ProductID,
		Configuration: pricing.Configuration{
			WidthCm:  req.WidthCm,
			HeightCm: req.HeightCm,
			ColorID:  req.ColorID,
			GlassID:  req.GlassID,
		},
		Quantity: req.Quantity,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	if obs.CartItemsAddedTotal != nil {
		obs.CartItemsAddedTotal.Inc()
	}
	common.JSON(w, http.StatusCreated, map[string]any{"data": cartResponse{Cart: c, Summary: summary}})
}

// UpdateItem handles PATCH /api/v1/carts/{cartID}/items/{itemID}.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, summary, err := h.Service.UpdateQuantity(chi.URLParam(r, "cartID"), chi.URLParam(r, "itemID"), req.Quantity)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": cartResponse{Cart: c, Summary: summary}})
}

// RemoveItem handles DELETE /api/v1/carts/{cartID}/items/{itemID}.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	c, summary, err := h.Service.RemoveItem(chi.URLParam(r, "cartID"), chi.URLParam(r, "itemID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": cartResponse{Cart: c, Summary: summary}})
}

// ApplyDiscount handles POST /api/v1/carts/{cartID}/discount.
func (h *Handler) ApplyDiscount(w http.ResponseWriter, r *http.Request) {
	var req discountRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, summary, err := h.Service.ApplyDiscount(chi.URLParam(r, "cartID"), req.Code)
	if err != nil {
		if obs.DiscountAppliedTotal != nil {
			obs.DiscountAppliedTotal.WithLabelValues("rejected").Inc()
		}
		h.writeError(w, err)
		return
	}
	if obs.DiscountAppliedTotal != nil {
		obs.DiscountAppliedTotal.WithLabelValues("applied").Inc()
	}
	if h.Events != nil {
		_, _ = h.Events.Emit(r.Context(), events.TopicDiscountApplied, c.ID, map[string]any{
			"code":     summary.DiscountCode,
			"discount": summary.Discount,
		})
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": cartResponse{Cart: c, Summary: summary}})
}

// RemoveDiscount handles DELETE /api/v1/carts/{cartID}/discount.
func (h *Handler) RemoveDiscount(w http.ResponseWriter, r *http.Request) {
	c, summary, err := h.Service.RemoveDiscount(chi.URLParam(r, "cartID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": cartResponse{Cart: c, Summary: summary}})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON payload", nil)
		return false
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(dst); err != nil {
			common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "payload validation failed", err.Error())
			return false
		}
	}
	return true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var valErr *ValidationError
	switch {
	case errors.As(err, &valErr):
		common.JSONError(w, http.StatusUnprocessableEntity, "INVALID_CONFIGURATION", "configuration does not satisfy product constraints", valErr.Verdict.Reasons)
	case errors.Is(err, catalog.ErrNotFound):
		common.JSONError(w, http.StatusNotFound, "PRODUCT_NOT_FOUND", "product not found", nil)
	case errors.Is(err, ErrItemNotFound):
		common.JSONError(w, http.StatusNotFound, "ITEM_NOT_FOUND", "cart item not found", nil)
	case errors.Is(err, ErrNotFound):
		common.JSONError(w, http.StatusNotFound, "CART_NOT_FOUND", "cart not found", nil)
	case errors.Is(err, discount.ErrNotFound):
		common.JSONError(w, http.StatusNotFound, "DISCOUNT_NOT_FOUND", "discount code not found", nil)
	case errors.Is(err, discount.ErrExpired),
		errors.Is(err, discount.ErrInactive),
		errors.Is(err, discount.ErrUsageLimitReached):
		common.JSONError(w, http.StatusUnprocessableEntity, "DISCOUNT_NOT_APPLICABLE", err.Error(), nil)
	case errors.Is(err, ErrInvalidInput):
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
	default:
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unexpected error", nil)
	}
}
