package ratewatch_test

import (
	"testing"

	"github.com/apatil/ratewatch"
	"github.com/stretchr/testify/assert"
)

func TestFindRates(t *testing.T) {
	t.Parallel()

	t.Run("finds percentage tokens", func(t *testing.T) {
		t.Parallel()

		rates := ratewatch.FindRates("rates from 8.50% to 9.25%", 3)
		assert.Equal(t, []string{"8.50%", "9.25%"}, rates)
	})

	t.Run("allows a space before the percent sign", func(t *testing.T) {
		t.Parallel()

		rates := ratewatch.FindRates("onward from 7.35 % p.a.", 3)
		assert.Equal(t, []string{"7.35 %"}, rates)
	})

	t.Run("ignores integers without a decimal part", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, ratewatch.FindRates("100% processing fee waiver", 3))
	})

	t.Run("deduplicates preserving first-seen order", func(t *testing.T) {
		t.Parallel()

		rates := ratewatch.FindRates("9.10% then 8.50% then 9.10%", 3)
		assert.Equal(t, []string{"9.10%", "8.50%"}, rates)
	})

	t.Run("caps the number of tokens", func(t *testing.T) {
		t.Parallel()

		rates := ratewatch.FindRates("1.10% 2.20% 3.30% 4.40%", 3)
		assert.Equal(t, []string{"1.10%", "2.20%", "3.30%"}, rates)
	})

	t.Run("returns nil for text without tokens", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, ratewatch.FindRates("no rates here", 3))
		assert.Nil(t, ratewatch.FindRates("", 3))
	})
}
