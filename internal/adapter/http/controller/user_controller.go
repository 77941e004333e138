package controller

import (
	"net/http"
	"time"

	"github.com/apexbank/apexbank-api/internal/adapter/http/models"
	"github.com/apexbank/apexbank-api/internal/usecase/service_interfaces"
	"github.com/go-chi/chi/v5"
)

type UserController struct {
	service service_interfaces.UserService
}

func NewUserController(service service_interfaces.UserService) *UserController {
	return &UserController{service: service}
}

func (c *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	a, ok := actor(w, r)
	if !ok {
		return
	}

	req, ok := decodeBody[models.UpdateProfileRequest](w, r)
	if !ok {
		return
	}
	logRequest(r, req)

	response, err := c.service.UpdateProfile(r.Context(), a, req)
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	a, ok := actor(w, r)
	if !ok {
		return
	}

	response, err := c.service.ListUsers(r.Context(), a)
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	a, ok := actor(w, r)
	if !ok {
		return
	}

	response, err := c.service.GetUser(r.Context(), a, chi.URLParam(r, "id"))
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	a, ok := actor(w, r)
	if !ok {
		return
	}

	req, ok := decodeBody[models.UpdateUserRequest](w, r)
	if !ok {
		return
	}
	logRequest(r, req)

	response, err := c.service.UpdateUser(r.Context(), a, chi.URLParam(r, "id"), req)
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	a, ok := actor(w, r)
	if !ok {
		return
	}

	response, err := c.service.DeleteUser(r.Context(), a, chi.URLParam(r, "id"))
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *UserController) Details(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	a, ok := actor(w, r)
	if !ok {
		return
	}

	response, err := c.service.GetUserDetails(r.Context(), a, chi.URLParam(r, "id"))
	respond(w, r, response, err, http.StatusOK, start)
}
