package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apexbank/apexbank-api/internal/adapter/fx"
	"github.com/apexbank/apexbank-api/internal/adapter/http/controller"
	"github.com/apexbank/apexbank-api/internal/adapter/http/router"
	"github.com/apexbank/apexbank-api/internal/adapter/repository/postgres"
	"github.com/apexbank/apexbank-api/internal/config"
	"github.com/apexbank/apexbank-api/internal/logger"
	"github.com/apexbank/apexbank-api/internal/usecase/services"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		cancel()
		log.Fatalf("open database: %v", err)
	}
	if err := postgres.RunMigrations(ctx, db, cfg.MigrationsDir); err != nil {
		cancel()
		log.Fatalf("run migrations: %v", err)
	}
	cancel()

	userRepo := postgres.NewUserRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)
	loanRepo := postgres.NewLoanRepository(db)
	cardRepo := postgres.NewCardRepository(db)
	ledgerRepo := postgres.NewLedgerRepository(db)

	rateCache := fx.NewCache(cfg.RateCacheTTL())
	rateProvider := fx.NewClient(cfg.RateProviderURL, cfg.RateProviderKey, cfg.RateProviderTimeout())

	rateService := services.NewRateService(rateProvider, rateCache)
	authService := services.NewAuthService(userRepo, accountRepo, cfg.JWTSecret, cfg.JWTTTL())
	accountService := services.NewAccountService(accountRepo)
	transactionService := services.NewTransactionService(accountRepo, transactionRepo, ledgerRepo, rateService)
	loanService := services.NewLoanService(accountRepo, loanRepo, ledgerRepo)
	cardService := services.NewCardService(userRepo, accountRepo, cardRepo)
	userService := services.NewUserService(userRepo, accountRepo, transactionRepo, cardRepo, loanRepo)

	handler := router.New(router.Controllers{
		Auth:        controller.NewAuthController(authService),
		Account:     controller.NewAccountController(accountService),
		Transaction: controller.NewTransactionController(transactionService),
		Loan:        controller.NewLoanController(loanService),
		Card:        controller.NewCardController(cardService),
		User:        controller.NewUserController(userService),
	}, []byte(cfg.JWTSecret))

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", logger.Fields{"port": cfg.ServerPort})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", err, nil)
	}
	if err := db.Close(); err != nil {
		logger.Error("database close failed", err, nil)
	}

	logger.Info("server stopped", nil)
}
