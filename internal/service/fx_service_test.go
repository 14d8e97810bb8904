package service_test

import (
	"testing"
	"time"

	"pricex-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFXRates(t *testing.T) {
	svc := service.NewFXService()

	t.Run("quotes every supported currency against USD", func(t *testing.T) {
		rates := svc.Rates("USD")

		require.NotNil(t, rates)
		assert.Equal(t, "USD", rates.Base)
		assert.Len(t, rates.Rates, 10)
		assert.Equal(t, 1.0, rates.Rates["USD"])
		assert.Equal(t, 0.92, rates.Rates["EUR"])
		assert.Equal(t, 149.50, rates.Rates["JPY"])
	})

	t.Run("empty base defaults to USD", func(t *testing.T) {
		rates := svc.Rates("")
		assert.Equal(t, "USD", rates.Base)
	})

	t.Run("non-USD base is echoed, rates stay USD-relative", func(t *testing.T) {
		rates := svc.Rates("EUR")

		assert.Equal(t, "EUR", rates.Base)
		assert.Equal(t, 1.0, rates.Rates["USD"])
	})

	t.Run("timestamp is RFC3339", func(t *testing.T) {
		rates := svc.Rates("USD")

		_, err := time.Parse(time.RFC3339, rates.Timestamp)
		assert.NoError(t, err)
	})
}
