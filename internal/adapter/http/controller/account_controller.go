package controller

import (
	"net/http"
	"time"

	"github.com/apexbank/apexbank-api/internal/adapter/http/models"
	"github.com/apexbank/apexbank-api/internal/usecase/service_interfaces"
)

type AccountController struct {
	service service_interfaces.AccountService
}

func NewAccountController(service service_interfaces.AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) Create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	a, ok := actor(w, r)
	if !ok {
		return
	}

	req, ok := decodeBody[models.CreateAccountRequest](w, r)
	if !ok {
		return
	}
	logRequest(r, req)

	response, err := c.service.CreateAccount(r.Context(), a, req)
	respond(w, r, response, err, http.StatusCreated, start)
}

func (c *AccountController) List(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	a, ok := actor(w, r)
	if !ok {
		return
	}

	response, err := c.service.ListAccounts(r.Context(), a)
	respond(w, r, response, err, http.StatusOK, start)
}
