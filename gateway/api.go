package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/alovak/payment-sandbox/gateway/models"
	"github.com/alovak/payment-sandbox/internal/card"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

// API is the HTTP API for the payment sandbox.
type API struct {
	service *Service
	logger  *slog.Logger
}

func NewAPI(service *Service, logger *slog.Logger) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Route("/api/credit-cards", func(r chi.Router) {
		r.Post("/", a.authorizePayment)
		r.Get("/{transactionID}", a.getTransaction)
	})
	r.Get("/health", a.health)
}

// statusResponse is the envelope for every non-201 outcome.
type statusResponse struct {
	Status  string             `json:"status"`
	Message string             `json:"message"`
	Errors  models.FieldErrors `json:"errors,omitempty"`
}

func (a *API) authorizePayment(w http.ResponseWriter, r *http.Request) {
	req := models.PaymentRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, statusResponse{
			Status:  "invalid_request",
			Message: "Request body is not a valid payment request.",
		})
		return
	}

	transaction, fieldErrs, err := a.service.Authorize(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(fieldErrs) > 0 {
		a.logger.Info("payment rejected",
			slog.String("card", card.Mask(req.CardNumber)),
			slog.Int("failed_fields", len(fieldErrs)),
		)
		writeJSON(w, http.StatusBadRequest, statusResponse{
			Status:  "rejected",
			Message: "Payload validation failed.",
			Errors:  fieldErrs,
		})
		return
	}

	a.logger.Info("payment approved",
		slog.String("transaction_id", transaction.TransactionID),
		slog.String("card", card.Mask(req.CardNumber)),
		slog.String("brand", string(transaction.CardBrand)),
	)
	writeJSON(w, http.StatusCreated, transaction)
}

func (a *API) getTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionID")

	transaction, err := a.service.GetTransaction(transactionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeJSON(w, http.StatusNotFound, statusResponse{
				Status:  "not_found",
				Message: fmt.Sprintf("Transaction %s was not found.", transactionID),
			})
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, transaction)
}

func (a *API) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
