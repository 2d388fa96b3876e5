package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/piyush898784/rentz/internal/domain"
	"github.com/piyush898784/rentz/internal/security"
	"github.com/piyush898784/rentz/internal/service"
)

// NewRouter wires every endpoint. Public routes come first; everything else
// runs behind the auth middleware, with role-gated routes additionally
// wrapped by the role guard.
func NewRouter(
	tokens security.TokenManager,
	authSvc service.AuthService,
	productSvc service.ProductService,
	rentalSvc service.RentalService,
	dashboardSvc service.DashboardService,
) *mux.Router {
	authHandler := NewAuthHandler(authSvc)
	productHandler := NewProductHandler(productSvc)
	rentalHandler := NewRentalHandler(rentalSvc, productSvc)
	dashboardHandler := NewDashboardHandler(dashboardSvc)

	authMw := NewAuthMiddleware(tokens)
	ownerOnly := RequireRole(domain.ProfileRoleOwner)

	router := mux.NewRouter()
	router.StrictSlash(true)

	// Public
	router.HandleFunc("/", productHandler.Home).Methods(http.MethodGet)
	router.HandleFunc("/signup/", authHandler.Signup).Methods(http.MethodPost)
	router.HandleFunc("/login/", authHandler.Login).Methods(http.MethodPost)
	router.HandleFunc("/logout/", authHandler.Logout).Methods(http.MethodPost)

	// Authenticated
	authed := router.NewRoute().Subrouter()
	authed.Use(authMw.RequireAuth)

	authed.Handle("/owner-dashboard/", ownerOnly(http.HandlerFunc(dashboardHandler.OwnerDashboard))).Methods(http.MethodGet)
	authed.HandleFunc("/renter-dashboard/", dashboardHandler.RenterDashboard).Methods(http.MethodGet)

	authed.Handle("/add-product/", ownerOnly(http.HandlerFunc(productHandler.AddProductForm))).Methods(http.MethodGet)
	authed.Handle("/add-product/", ownerOnly(http.HandlerFunc(productHandler.AddProduct))).Methods(http.MethodPost)
	authed.HandleFunc("/delete-product/{id:[0-9]+}/", productHandler.DeleteProduct).Methods(http.MethodPost)

	authed.HandleFunc("/rent/{id:[0-9]+}/", rentalHandler.RentForm).Methods(http.MethodGet)
	authed.HandleFunc("/rent/{id:[0-9]+}/", rentalHandler.Rent).Methods(http.MethodPost)
	authed.HandleFunc("/rental-history/", rentalHandler.RentalHistory).Methods(http.MethodGet)
	authed.HandleFunc("/receipt/{transaction_id}/", rentalHandler.Receipt).Methods(http.MethodGet)

	return router
}
