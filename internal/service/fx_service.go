package service

import (
	"time"

	"pricex-backend/internal/model"
)

type FXService interface {
	Rates(base string) *model.FXRates
}

type fxService struct{}

func NewFXService() FXService {
	return &fxService{}
}

// Rates returns the current exchange table. All rates are quoted
// relative to USD; the base parameter is echoed back, not re-based.
func (s *fxService) Rates(base string) *model.FXRates {
	if base == "" {
		base = "USD"
	}
	return &model.FXRates{
		Base: base,
		Rates: map[string]float64{
			"USD": 1.0,
			"EUR": 0.92,
			"GBP": 0.79,
			"JPY": 149.50,
			"CNY": 7.19,
			"AUD": 1.52,
			"CAD": 1.36,
			"CHF": 0.88,
			"SEK": 10.35,
			"NZD": 1.63,
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}
