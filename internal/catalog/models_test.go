package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	t.Run("derived from old price when present", func(t *testing.T) {
		p := Product{Price: 1250, OldPrice: 1500, Discount: 15}
		// (1500-1250)/1500 = 16.7%, rounded; the explicit field loses
		assert.Equal(t, 17, p.DiscountPercent())
	})

	t.Run("explicit field when no old price", func(t *testing.T) {
		p := Product{Price: 890, Discount: 10}
		assert.Equal(t, 10, p.DiscountPercent())
	})

	t.Run("old price below current is ignored", func(t *testing.T) {
		p := Product{Price: 1000, OldPrice: 800, Discount: 5}
		assert.Equal(t, 5, p.DiscountPercent())
	})

	t.Run("no discount at all", func(t *testing.T) {
		assert.Zero(t, Product{Price: 500}.DiscountPercent())
	})
}
