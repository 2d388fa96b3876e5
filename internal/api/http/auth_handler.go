package http

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/piyush898784/rentz/internal/domain"
	"github.com/piyush898784/rentz/internal/service"
)

var validate = newValidator()

// newValidator reports failed fields by their json names, so validation
// errors line up with the request body the client sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type signupRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=150"`
	Email       string `json:"email" validate:"required,email"`
	FirstName   string `json:"first_name" validate:"required,max=30"`
	LastName    string `json:"last_name" validate:"required,max=30"`
	Password    string `json:"password" validate:"required,min=8"`
	Role        string `json:"role" validate:"required,oneof=owner renter"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=15"`
}

type authResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Role         string `json:"role"`
	// RedirectTo tells the client which dashboard to land on.
	RedirectTo string `json:"redirect_to"`
}

func dashboardPath(role domain.ProfileRole) string {
	if role == domain.ProfileRoleOwner {
		return "/owner-dashboard/"
	}
	return "/renter-dashboard/"
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	role := domain.ProfileRole(req.Role)
	user, access, refresh, err := h.authSvc.Signup(r.Context(), req.Username, req.Email, req.FirstName, req.LastName, req.Password, role, req.PhoneNumber)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		User *domain.User `json:"user"`
		authResponse
	}{
		User: user,
		authResponse: authResponse{
			AccessToken:  access,
			RefreshToken: refresh,
			Role:         req.Role,
			RedirectTo:   dashboardPath(role),
		},
	})
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	access, refresh, role, err := h.authSvc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Role:         string(role),
		RedirectTo:   dashboardPath(role),
	})
}

// Logout is stateless: tokens are not tracked server side, so the client
// simply discards them.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
