package service_interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

type RateService interface {
	// GetRate never fails closed on provider trouble: it falls back to the
	// static table and finally to the identity rate.
	GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)
	// Convert returns the converted amount and the rate used.
	Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (decimal.Decimal, decimal.Decimal, error)
}
