package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/app/services"
	"github.com/shashiranjanraj/homegrown/pkg/bind"
	"github.com/shashiranjanraj/homegrown/pkg/middleware"
	"github.com/shashiranjanraj/homegrown/pkg/response"
	"github.com/shashiranjanraj/homegrown/pkg/validate"
)

type ProfileController struct {
	service *services.ProfileService
}

func NewProfileController(service *services.ProfileService) *ProfileController {
	return &ProfileController{service: service}
}

func profilePayload(u models.User) map[string]interface{} {
	addresses := u.Addresses
	if addresses == nil {
		addresses = []models.Address{}
	}
	return map[string]interface{}{
		"id":        u.ID.Hex(),
		"name":      u.Name,
		"email":     u.Email,
		"phone":     u.Phone,
		"role":      u.Role,
		"addresses": addresses,
	}
}

// Show returns the caller's profile with the embedded address book.
func (c *ProfileController) Show(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromCtx(r)

	user, err := c.service.Get(r.Context(), userID)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, profilePayload(user))
}

// Update applies profile changes. A password change must carry a verified
// current password.
func (c *ProfileController) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromCtx(r)

	var in services.UpdateProfileInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.UpdateProfile(r.Context(), userID, in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, profilePayload(user))
}

// Addresses lists the caller's saved addresses.
func (c *ProfileController) Addresses(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromCtx(r)

	addresses, err := c.service.ListAddresses(r.Context(), userID)
	if err != nil {
		fail(w, r, err)
		return
	}
	if addresses == nil {
		addresses = []models.Address{}
	}
	response.Success(w, addresses)
}

// AddAddress appends a new address; the first one saved becomes default.
func (c *ProfileController) AddAddress(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromCtx(r)

	var in services.AddressInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.AddAddress(r.Context(), userID, in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, profilePayload(user))
}

// UpdateAddress rewrites one address.
func (c *ProfileController) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromCtx(r)

	var in services.AddressInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.UpdateAddress(r.Context(), userID, chi.URLParam(r, "id"), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, profilePayload(user))
}

// DeleteAddress removes one address, promoting a new default if needed.
func (c *ProfileController) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromCtx(r)

	user, err := c.service.DeleteAddress(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, profilePayload(user))
}
