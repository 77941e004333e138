package controller

import (
	"net/http"
	"time"

	"github.com/apexbank/apexbank-api/internal/adapter/http/models"
	"github.com/apexbank/apexbank-api/internal/usecase/service_interfaces"
)

type AuthController struct {
	service service_interfaces.AuthService
}

func NewAuthController(service service_interfaces.AuthService) *AuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, ok := decodeBody[models.RegisterRequest](w, r)
	if !ok {
		return
	}
	logRequest(r, req)

	response, err := c.service.Register(r.Context(), req)
	respond(w, r, response, err, http.StatusCreated, start)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, ok := decodeBody[models.LoginRequest](w, r)
	if !ok {
		return
	}
	logRequest(r, req)

	response, err := c.service.Login(r.Context(), req)
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	a, ok := actor(w, r)
	if !ok {
		return
	}

	response, err := c.service.Me(r.Context(), a)
	respond(w, r, response, err, http.StatusOK, start)
}
