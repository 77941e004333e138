package router

import (
	"net/http"
	"time"

	"github.com/apexbank/apexbank-api/internal/adapter/http/controller"
	"github.com/apexbank/apexbank-api/internal/adapter/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type Controllers struct {
	Auth        *controller.AuthController
	Account     *controller.AccountController
	Transaction *controller.TransactionController
	Loan        *controller.LoanController
	Card        *controller.CardController
	User        *controller.UserController
}

// New assembles the full route tree. Everything under /api except the two
// auth endpoints requires a bearer token; user management and card approval
// additionally require the admin role.
func New(c Controllers, jwtSecret []byte) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", c.Auth.Register)
		api.Post("/auth/login", c.Auth.Login)

		api.Group(func(private chi.Router) {
			private.Use(middleware.JWTAuth(jwtSecret))

			private.Get("/auth/me", c.Auth.Me)
			private.Put("/profile", c.User.UpdateProfile)

			private.Get("/accounts", c.Account.List)
			private.Post("/accounts", c.Account.Create)

			private.Get("/transactions", c.Transaction.List)
			private.Post("/transactions/deposit", c.Transaction.Deposit)
			private.Post("/transactions/withdraw", c.Transaction.Withdraw)
			private.Post("/transactions/transfer", c.Transaction.Transfer)

			private.Get("/loans", c.Loan.List)
			private.Post("/loans/apply", c.Loan.Apply)
			private.Post("/loans/{id}/payment", c.Loan.Repay)

			private.Get("/cards", c.Card.List)
			private.Post("/cards/order", c.Card.Order)

			private.Group(func(admin chi.Router) {
				admin.Use(middleware.RequireAdmin)

				admin.Get("/cards/admin/pending", c.Card.ListPending)
				admin.Put("/cards/{id}/approve", c.Card.Decide)

				admin.Get("/users", c.User.List)
				admin.Get("/users/{id}", c.User.Get)
				admin.Put("/users/{id}", c.User.Update)
				admin.Delete("/users/{id}", c.User.Delete)
				admin.Get("/users/{id}/details", c.User.Details)
			})
		})
	})

	return r
}
