package controller

import (
	"net/http"
	"time"

	"github.com/apexbank/apexbank-api/internal/adapter/http/models"
	"github.com/apexbank/apexbank-api/internal/usecase/service_interfaces"
	"github.com/go-chi/chi/v5"
)

type CardController struct {
	service service_interfaces.CardService
}

func NewCardController(service service_interfaces.CardService) *CardController {
	return &CardController{service: service}
}

func (c *CardController) Order(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	a, ok := actor(w, r)
	if !ok {
		return
	}

	req, ok := decodeBody[models.OrderCardRequest](w, r)
	if !ok {
		return
	}
	logRequest(r, req)

	response, err := c.service.OrderCard(r.Context(), a, req)
	respond(w, r, response, err, http.StatusCreated, start)
}

func (c *CardController) List(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	a, ok := actor(w, r)
	if !ok {
		return
	}

	response, err := c.service.ListCards(r.Context(), a)
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *CardController) ListPending(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	a, ok := actor(w, r)
	if !ok {
		return
	}

	response, err := c.service.ListPendingCards(r.Context(), a)
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *CardController) Decide(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	a, ok := actor(w, r)
	if !ok {
		return
	}

	req, ok := decodeBody[models.CardDecisionRequest](w, r)
	if !ok {
		return
	}
	logRequest(r, req)

	response, err := c.service.DecideCard(r.Context(), a, chi.URLParam(r, "id"), req)
	respond(w, r, response, err, http.StatusOK, start)
}
