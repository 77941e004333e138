package controller

import (
	"net/http"
	"time"

	"github.com/apexbank/apexbank-api/internal/adapter/http/models"
	"github.com/apexbank/apexbank-api/internal/usecase/service_interfaces"
	"github.com/go-chi/chi/v5"
)

type LoanController struct {
	service service_interfaces.LoanService
}

func NewLoanController(service service_interfaces.LoanService) *LoanController {
	return &LoanController{service: service}
}

func (c *LoanController) Apply(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	a, ok := actor(w, r)
	if !ok {
		return
	}

	req, ok := decodeBody[models.LoanApplicationRequest](w, r)
	if !ok {
		return
	}
	logRequest(r, req)

	response, err := c.service.Apply(r.Context(), a, req)
	respond(w, r, response, err, http.StatusCreated, start)
}

func (c *LoanController) Repay(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	a, ok := actor(w, r)
	if !ok {
		return
	}

	req, ok := decodeBody[models.LoanPaymentRequest](w, r)
	if !ok {
		return
	}
	logRequest(r, req)

	response, err := c.service.Repay(r.Context(), a, chi.URLParam(r, "id"), req)
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *LoanController) List(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	a, ok := actor(w, r)
	if !ok {
		return
	}

	response, err := c.service.ListLoans(r.Context(), a)
	respond(w, r, response, err, http.StatusOK, start)
}
