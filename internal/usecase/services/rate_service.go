package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/apexbank/apexbank-api/internal/adapter/fx"
	"github.com/apexbank/apexbank-api/internal/logger"
	"github.com/apexbank/apexbank-api/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// Verify that RateService implements the service_interfaces.RateService interface
var _ service_interfaces.RateService = (*RateService)(nil)

// RateService resolves exchange rates through a TTL cache, a live provider
// and a static fallback table, in that order. Money movement never halts
// because the rate feed is down: a pair unknown to both the provider and
// the fallback table resolves to the identity rate.
type RateService struct {
	provider fx.Provider
	cache    *fx.Cache
	flight   singleflight.Group
}

func NewRateService(provider fx.Provider, cache *fx.Cache) *RateService {
	return &RateService{
		provider: provider,
		cache:    cache,
	}
}

func (s *RateService) GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	fromCurrency = strings.ToUpper(strings.TrimSpace(fromCurrency))
	toCurrency = strings.ToUpper(strings.TrimSpace(toCurrency))

	if len(fromCurrency) != 3 || len(toCurrency) != 3 {
		return decimal.Decimal{}, fmt.Errorf("currency codes must be 3 characters")
	}
	if fromCurrency == toCurrency {
		return decimal.NewFromInt(1), nil
	}

	key := fx.PairKey(fromCurrency, toCurrency)
	if rate, ok := s.cache.Get(key); ok {
		return rate, nil
	}

	// Collapse concurrent lookups for the same pair into one provider call.
	result, _, _ := s.flight.Do(key, func() (any, error) {
		return s.lookupRate(ctx, fromCurrency, toCurrency, key), nil
	})

	return result.(decimal.Decimal), nil
}

func (s *RateService) Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (decimal.Decimal, decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, decimal.Decimal{}, fmt.Errorf("amount must be greater than zero")
	}

	rate, err := s.GetRate(ctx, fromCurrency, toCurrency)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}

	return amount.Mul(rate), rate, nil
}

func (s *RateService) lookupRate(ctx context.Context, fromCurrency, toCurrency, key string) decimal.Decimal {
	rate, err := s.provider.FetchRate(ctx, fromCurrency, toCurrency)
	if err == nil {
		s.cache.Set(key, rate)
		return rate
	}

	logger.Error("rate service provider lookup failed", err, logger.Fields{
		"fromCurrency": fromCurrency,
		"toCurrency":   toCurrency,
	})

	if fallback, ok := fx.FallbackRate(fromCurrency, toCurrency); ok {
		logger.Info("rate service using fallback rate", logger.Fields{
			"pair": key,
			"rate": fallback,
		})
		return fallback
	}

	logger.Info("rate service no rate found, using identity conversion", logger.Fields{
		"pair": key,
	})
	return decimal.NewFromInt(1)
}
