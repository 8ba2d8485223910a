package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/priyanshi-bakery/storefront/internal/models"
	"github.com/priyanshi-bakery/storefront/internal/repository"
	"github.com/priyanshi-bakery/storefront/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		h.log.Error("failed to create order", "error", err)

		switch {
		case errors.Is(err, service.ErrMissingCustomer):
			WriteError(w, http.StatusBadRequest, "Missing required data", h.log)
		case errors.Is(err, service.ErrEmptyOrder):
			WriteError(w, http.StatusBadRequest, "Order must contain at least one item", h.log)
		case errors.Is(err, service.ErrInvalidQuantity):
			WriteError(w, http.StatusBadRequest, "Quantity must be positive", h.log)
		case errors.Is(err, service.ErrInvalidProduct):
			WriteError(w, http.StatusBadRequest, "Invalid product", h.log)
		default:
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.OrderCreatedResponse{
		Message: "Order placed successfully",
		OrderID: order.ID,
	}, h.log)
	h.log.Info("order created successfully", "order_id", order.ID, "items_count", len(order.Items))
}

// GetOrderStatus handles GET /api/orders/{orderId}
func (h *OrderHandler) GetOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderIDStr := chi.URLParam(r, "orderId")

	orderID, err := strconv.ParseInt(orderIDStr, 10, 64)
	if err != nil {
		h.log.Warn("invalid order ID format", "orderId", orderIDStr, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	status, err := h.orderService.OrderStatus(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			h.log.Info("order not found", "order_id", orderID)
			WriteError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}

		h.log.Error("failed to get order status", "order_id", orderID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, models.OrderStatusResponse{
		OrderID: orderID,
		Status:  status,
	}, h.log)
}
