package adaptor

import (
	"net/http"

	"movie-mates/internal/dto/request"
	"movie-mates/internal/usecase"
	"movie-mates/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log,
	}
}

// GetMethods handles GET /payment for the authenticated user
func (h *PaymentHandler) GetMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.service.ListMethods(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get payment methods")
		return
	}

	utils.ResponseSuccess(w, "Payment methods retrieved successfully", methods)
}

// AddMethod handles POST /payment for the authenticated user
func (h *PaymentHandler) AddMethod(w http.ResponseWriter, r *http.Request) {
	var req request.AddPaymentMethodRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return
	}

	method, err := h.service.AddMethod(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add payment method")
		return
	}

	utils.ResponseCreated(w, "Payment method added successfully", method)
}

// RemoveMethod handles DELETE /payment for the authenticated user
func (h *PaymentHandler) RemoveMethod(w http.ResponseWriter, r *http.Request) {
	var req request.RemovePaymentMethodRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return
	}

	if err := h.service.RemoveMethod(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "remove payment method")
		return
	}

	utils.ResponseSuccess(w, "Payment method removed successfully", nil)
}

// CreatePayment handles POST /paymentInfo
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return
	}

	payment, err := h.service.CreateTransaction(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create payment")
		return
	}

	utils.ResponseCreated(w, "Payment recorded successfully", payment)
}

// GetAllPayments handles GET /paymentInfo
func (h *PaymentHandler) GetAllPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.ListTransactions(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get all payments")
		return
	}

	utils.ResponseSuccess(w, "Payments retrieved successfully", payments)
}

// GetPaymentsByEmail handles GET /paymentInfoByEmail/{email}
func (h *PaymentHandler) GetPaymentsByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	payments, err := h.service.TransactionsByEmail(r.Context(), email)
	if err != nil {
		handleServiceError(w, h.log, err, "get payments by email")
		return
	}

	utils.ResponseSuccess(w, "Payments retrieved successfully", payments)
}

// GetPaymentsByID handles GET /paymentInfoByID/{ID}
func (h *PaymentHandler) GetPaymentsByID(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "ID")
	if transactionID == "" {
		utils.ResponseBadRequest(w, "Transaction ID is required", nil)
		return
	}

	payments, err := h.service.TransactionsByID(r.Context(), transactionID)
	if err != nil {
		handleServiceError(w, h.log, err, "get payments by transaction ID")
		return
	}

	utils.ResponseSuccess(w, "Payments retrieved successfully", payments)
}
