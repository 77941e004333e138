package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/apexbank/apexbank-api/internal/adapter/http/models"
	"github.com/apexbank/apexbank-api/internal/usecase/service_interfaces"
)

type TransactionController struct {
	service service_interfaces.TransactionService
}

func NewTransactionController(service service_interfaces.TransactionService) *TransactionController {
	return &TransactionController{service: service}
}

func (c *TransactionController) Deposit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	a, ok := actor(w, r)
	if !ok {
		return
	}

	req, ok := decodeBody[models.DepositRequest](w, r)
	if !ok {
		return
	}
	logRequest(r, req)

	response, err := c.service.Deposit(r.Context(), a, req)
	respond(w, r, response, err, http.StatusCreated, start)
}

func (c *TransactionController) Withdraw(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	a, ok := actor(w, r)
	if !ok {
		return
	}

	req, ok := decodeBody[models.WithdrawRequest](w, r)
	if !ok {
		return
	}
	logRequest(r, req)

	response, err := c.service.Withdraw(r.Context(), a, req)
	respond(w, r, response, err, http.StatusCreated, start)
}

func (c *TransactionController) Transfer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	a, ok := actor(w, r)
	if !ok {
		return
	}

	req, ok := decodeBody[models.TransferRequest](w, r)
	if !ok {
		return
	}
	logRequest(r, req)

	response, err := c.service.Transfer(r.Context(), a, req)
	respond(w, r, response, err, http.StatusCreated, start)
}

func (c *TransactionController) List(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	a, ok := actor(w, r)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	response, err := c.service.ListTransactions(r.Context(), a, page, limit)
	respond(w, r, response, err, http.StatusOK, start)
}
