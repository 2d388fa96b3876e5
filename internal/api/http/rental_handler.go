package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/piyush898784/rentz/internal/domain"
	"github.com/piyush898784/rentz/internal/service"
)

type RentalHandler struct {
	rentalSvc  service.RentalService
	productSvc service.ProductService
}

func NewRentalHandler(rentalSvc service.RentalService, productSvc service.ProductService) *RentalHandler {
	return &RentalHandler{
		rentalSvc:  rentalSvc,
		productSvc: productSvc,
	}
}

// RentForm returns the product being rented. Products that are not currently
// available read as not found.
func (h *RentalHandler) RentForm(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid product id"})
		return
	}

	product, err := h.productSvc.GetAvailableProduct(r.Context(), productID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

type rentRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	Days      int32  `json:"days" validate:"required,min=1,max=365"`
}

func (h *RentalHandler) Rent(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing authorization token"})
		return
	}

	productID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid product id"})
		return
	}

	var req rentRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	rental, payment, err := h.rentalSvc.Rent(r.Context(), claims.UserID, productID, req.StartDate, req.Days)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		Rental  *domain.Rental  `json:"rental"`
		Payment *domain.Payment `json:"payment"`
	}{
		Rental:  rental,
		Payment: payment,
	})
}

// Receipt returns the payment identified by the transaction id from the
// renter's receipt email, together with its rental.
func (h *RentalHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing authorization token"})
		return
	}

	transactionID := mux.Vars(r)["transaction_id"]
	rental, payment, err := h.rentalSvc.Receipt(r.Context(), claims.UserID, transactionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Rental  *domain.Rental  `json:"rental"`
		Payment *domain.Payment `json:"payment"`
	}{
		Rental:  rental,
		Payment: payment,
	})
}

func (h *RentalHandler) RentalHistory(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing authorization token"})
		return
	}

	rentals, err := h.rentalSvc.RentalHistory(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Rentals []domain.Rental `json:"rentals"`
	}{Rentals: rentals})
}
