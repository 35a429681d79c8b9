package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/distrimed/order-service/internal/entities"
	"github.com/distrimed/order-service/internal/service"
	"github.com/distrimed/order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req service.CreateOrderRequest) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	ListOrders(ctx context.Context, clientID string) (service.OrderListing, error)
	GetSellerReport(ctx context.Context, sellerID string) (service.SellerReport, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/orders", h.CreateOrder)
	r.Get("/orders", h.ListOrders)
	r.Get("/orders/{order_number}", h.GetOrderByNumber)
	r.Get("/reports/sellers/{seller_id}", h.GetSellerReport)
}

// CreateOrder creates an order after verifying and committing stock.
// @Summary      Create an order
// @Description  Validates the request, verifies and decrements stock in the inventory service, persists the order
// @Tags         orders
// @Accept       json
// @Param        order  body      CreateOrderRequest  true  "Order to create"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Validation error"
// @Failure      422  {object}  utils.ErrorResponse "Stock or persistence failure"
// @Failure      500  {object}  utils.ErrorResponse "Internal error"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.svc.CreateOrder(ctx, req.ToService())
	if err != nil {
		h.writeCreateError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

func (h *HTTPHandler) writeCreateError(ctx context.Context, w http.ResponseWriter, err error) {
	var ve *entities.ValidationError
	if errors.As(err, &ve) {
		utils.WriteError(w, ve.Reason, http.StatusBadRequest)
		return
	}

	var ble *entities.BusinessLogicError
	if errors.As(err, &ble) {
		h.logger.WarnContext(ctx, "order creation rejected", slog.String("reason", ble.Reason))
		utils.WriteError(w, ble.Reason, http.StatusUnprocessableEntity)
		return
	}

	h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
	utils.WriteError(w, "internal server error", http.StatusInternalServerError)
}

// GetOrderByNumber returns an order by its business number.
// @Summary      Get an order by number
// @Tags         orders
// @Param        order_number   path      string  true  "Order number (PED-YYYYMMDD-NNNNN)"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal error"
// @Router       /orders/{order_number} [get]
func (h *HTTPHandler) GetOrderByNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderNumber := chi.URLParam(r, "order_number")

	if err := h.validate.Var(orderNumber, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrderByNumber(ctx, orderNumber)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_number", orderNumber))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListOrders lists a client's orders with catalog enrichment.
// @Summary      List orders for a client
// @Tags         orders
// @Param        client_id   query     string  true  "Client UUID"
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Missing client_id"
// @Failure      500  {object}  utils.ErrorResponse "Internal error"
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID := r.URL.Query().Get("client_id")

	if err := h.validate.Var(clientID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	listing, err := h.svc.ListOrders(ctx, clientID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err), slog.String("client_id", clientID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ListingToJSON(listing), http.StatusOK)
}

// GetSellerReport aggregates order statuses across a seller's clients.
// @Summary      Seller order report
// @Tags         reports
// @Param        seller_id   path      string  true  "Seller UUID"
// @Success      200  {object}  SellerReport
// @Failure      500  {object}  utils.ErrorResponse "Internal error"
// @Router       /reports/sellers/{seller_id} [get]
func (h *HTTPHandler) GetSellerReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sellerID := chi.URLParam(r, "seller_id")

	if err := h.validate.Var(sellerID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	report, err := h.svc.GetSellerReport(ctx, sellerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build seller report", slog.Any("error", err), slog.String("seller_id", sellerID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ReportToJSON(report), http.StatusOK)
}
