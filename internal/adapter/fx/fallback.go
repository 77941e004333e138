package fx

import "github.com/shopspring/decimal"

// fallbackRates is the static last-resort rate table used when the live
// provider is unavailable.
var fallbackRates = map[string]decimal.Decimal{
	"USD_NGN": decimal.NewFromInt(1600),
	"USD_GHS": decimal.NewFromInt(12),
	"USD_ZAR": decimal.NewFromInt(18),
	"USD_EUR": decimal.NewFromFloat(0.85),
	"USD_GBP": decimal.NewFromFloat(0.75),
	"USD_CAD": decimal.NewFromFloat(1.25),
	"USD_AUD": decimal.NewFromFloat(1.35),
	"USD_BRL": decimal.NewFromFloat(5.2),
	"EUR_USD": decimal.NewFromFloat(1.18),
	"GBP_USD": decimal.NewFromFloat(1.33),
	"CAD_USD": decimal.NewFromFloat(0.8),
	"AUD_USD": decimal.NewFromFloat(0.74),
	"BRL_USD": decimal.NewFromFloat(0.19),
	"NGN_USD": decimal.NewFromFloat(0.000625),
	"GHS_USD": decimal.NewFromFloat(0.083),
	"ZAR_USD": decimal.NewFromFloat(0.056),
}

func FallbackRate(fromCurrency, toCurrency string) (decimal.Decimal, bool) {
	rate, ok := fallbackRates[PairKey(fromCurrency, toCurrency)]
	return rate, ok
}

func PairKey(fromCurrency, toCurrency string) string {
	return fromCurrency + "_" + toCurrency
}
