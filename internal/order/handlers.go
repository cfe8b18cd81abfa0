package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"

	"github.com/windsor-dist/storefront-api/internal/common"
	"github.com/windsor-dist/storefront-api/internal/events"
)

// Handler exposes order endpoints.
type Handler struct {
	Store    *Store
	Validate *validator.Validate
	Events   *events.Bus
}

type advanceRequest struct {
	Status      string `json:"status" validate:"required"`
	Description string `json:"description"`
}

// List handles GET /api/v1/orders.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	orders := h.Store.List()
	w.Header().Set("X-Total-Count", strconv.Itoa(len(orders)))
	common.JSON(w, http.StatusOK, map[string]any{"data": orders})
}

// Detail handles GET /api/v1/orders/{orderID}.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	o, err := h.Store.Get(chi.URLParam(r, "orderID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": o})
}

// Advance handles POST /api/v1/orders/{orderID}/status.
func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	var req advanceRequest
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
	o, err := h.Store.Advance(chi.URLParam(r, "orderID"), Status(req.Status), req.Description)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if h.Events != nil {
		_, _ = h.Events.Emit(r.Context(), events.TopicOrderStatusChanged, o.ID, map[string]any{
			"orderNumber": o.OrderNumber,
			"status":      o.Status,
		})
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": o})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		common.JSONError(w, http.StatusNotFound, "ORDER_NOT_FOUND", "order not found", nil)
	case errors.Is(err, ErrInvalidTransition):
		common.JSONError(w, http.StatusUnprocessableEntity, "INVALID_STATUS_TRANSITION", err.Error(), nil)
	default:
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unexpected error", nil)
	}
}
