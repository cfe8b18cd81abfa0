package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	validator "github.com/go-playground/validator/v10"

	"github.com/windsor-dist/storefront-api/internal/cart"
	"github.com/windsor-dist/storefront-api/internal/common"
	"github.com/windsor-dist/storefront-api/internal/discount"
	"github.com/windsor-dist/storefront-api/internal/events"
	"github.com/windsor-dist/storefront-api/internal/obs"
)

// Handler exposes the checkout endpoint.
type Handler struct {
	Service  *Service
	Validate *validator.Validate
	Events   *events.Bus
}

type checkoutRequest struct {
	CartID string `json:"cartId" validate:"required"`
	Notes  string `json:"notes"`
}

// PlaceOrder handles POST /api/v1/checkout.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
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
	o, err := h.Service.PlaceOrder(req.CartID, req.Notes)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if obs.OrdersCreatedTotal != nil {
		obs.OrdersCreatedTotal.Inc()
	}
	if h.Events != nil {
		_, _ = h.Events.Emit(r.Context(), events.TopicOrderCreated, o.ID, map[string]any{
			"orderNumber": o.OrderNumber,
			"total":       o.Pricing.Total,
		})
	}
	common.JSON(w, http.StatusCreated, map[string]any{"data": o})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrEmptyCart):
		common.JSONError(w, http.StatusUnprocessableEntity, "EMPTY_CART", "cannot check out an empty cart", nil)
	case errors.Is(err, cart.ErrNotFound):
		common.JSONError(w, http.StatusNotFound, "CART_NOT_FOUND", "cart not found", nil)
	case errors.Is(err, discount.ErrNotFound),
		errors.Is(err, discount.ErrExpired),
		errors.Is(err, discount.ErrInactive),
		errors.Is(err, discount.ErrUsageLimitReached):
		common.JSONError(w, http.StatusUnprocessableEntity, "DISCOUNT_NOT_APPLICABLE", err.Error(), nil)
	default:
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unexpected error", nil)
	}
}
