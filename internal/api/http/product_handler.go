package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/piyush898784/rentz/internal/domain"
	"github.com/piyush898784/rentz/internal/service"
)

type ProductHandler struct {
	productSvc service.ProductService
}

func NewProductHandler(productSvc service.ProductService) *ProductHandler {
	return &ProductHandler{productSvc: productSvc}
}

// Home is the public landing endpoint.
func (h *ProductHandler) Home(w http.ResponseWriter, r *http.Request) {
	page, err := h.productSvc.HomePage(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// AddProductForm returns the metadata a client needs to render the listing
// form: the category enum and availability states.
func (h *ProductHandler) AddProductForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Categories     []domain.ProductCategory     `json:"categories"`
		Availabilities []domain.ProductAvailability `json:"availabilities"`
	}{
		Categories:     domain.ProductCategories,
		Availabilities: []domain.ProductAvailability{domain.ProductAvailable, domain.ProductRented, domain.ProductMaintenance},
	})
}

type addProductRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Category     string `json:"category" validate:"required"`
	Description  string `json:"description" validate:"required"`
	PricePerDay  string `json:"price_per_day" validate:"required"`
	Availability string `json:"availability" validate:"omitempty,oneof=available rented maintenance"`
	ImageURL     string `json:"image_url" validate:"omitempty,url"`
}

func (h *ProductHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing authorization token"})
		return
	}

	var req addProductRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	price, err := decimal.NewFromString(req.PricePerDay)
	if err != nil || !price.GreaterThan(decimal.Zero) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "price_per_day must be a positive decimal"})
		return
	}

	product := &domain.Product{
		Name:         req.Name,
		Category:     domain.ProductCategory(req.Category),
		Description:  req.Description,
		PricePerDay:  price,
		Availability: domain.ProductAvailability(req.Availability),
		ImageURL:     req.ImageURL,
	}
	if err := h.productSvc.AddProduct(r.Context(), claims.UserID, product); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
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

	if err := h.productSvc.DeleteProduct(r.Context(), claims.UserID, productID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}
