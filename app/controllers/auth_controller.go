package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/app/services"
	"github.com/shashiranjanraj/homegrown/pkg/bind"
	"github.com/shashiranjanraj/homegrown/pkg/response"
	"github.com/shashiranjanraj/homegrown/pkg/validate"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

func userPayload(u models.User, token string) map[string]interface{} {
	return map[string]interface{}{
		"user": map[string]interface{}{
			"id":    u.ID.Hex(),
			"name":  u.Name,
			"email": u.Email,
			"role":  u.Role,
		},
		"token": token,
	}
}

// Signup registers a new account and returns it with a bearer token.
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var in services.SignupInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.service.Signup(r.Context(), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, userPayload(user, token))
}

type loginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and returns the user with a bearer token.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.service.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, userPayload(user, token))
}
