package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/analytics"
)

func TestQuantile(t *testing.T) {
	t.Run("linear interpolation over 100 values", func(t *testing.T) {
		values := make([]float64, 100)
		for i := range values {
			values[i] = float64(i + 1) // 1..100
		}

		// pos = 0.8*99 = 79.2 -> between 80 and 81
		assert.InDelta(t, 80.2, analytics.Quantile(values, 0.80), 1e-9)
		// pos = 0.2*99 = 19.8 -> between 20 and 21
		assert.InDelta(t, 20.8, analytics.Quantile(values, 0.20), 1e-9)
	})

	t.Run("selects exactly the top and bottom 20 of 100 distinct values", func(t *testing.T) {
		values := make([]float64, 100)
		for i := range values {
			values[i] = float64(i)
		}

		p80 := analytics.Quantile(values, 0.80)
		p20 := analytics.Quantile(values, 0.20)

		var above, below int
		for _, v := range values {
			if v >= p80 {
				above++
			}
			if v <= p20 {
				below++
			}
		}
		assert.Equal(t, 20, above)
		assert.Equal(t, 20, below)
	})

	t.Run("edge cases", func(t *testing.T) {
		assert.Equal(t, 0.0, analytics.Quantile(nil, 0.5))
		assert.Equal(t, 42.0, analytics.Quantile([]float64{42}, 0.8))

		values := []float64{3, 1, 2}
		assert.Equal(t, 1.0, analytics.Quantile(values, 0))
		assert.Equal(t, 3.0, analytics.Quantile(values, 1))
		// Input order is not disturbed
		assert.Equal(t, []float64{3, 1, 2}, values)
	})
}
