//go:build unit

package money_test

import (
	"testing"

	"hotel-booking/internal/domain/shared/money"
	"hotel-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{12000, "120.00"},
		{123456, "1234.56"},
		{-250, "-2.50"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, money.NewMoney(tc.cents).String())
		})
	}
}

func TestMoney_Percent(t *testing.T) {
	testCases := []struct {
		name     string
		cents    int64
		pct      int64
		expected int64
	}{
		{name: "exact", cents: 10000, pct: 20, expected: 2000},
		{name: "half rounds up", cents: 5, pct: 50, expected: 3},
		{name: "below half rounds down", cents: 12, pct: 20, expected: 2},
		{name: "negative half rounds away from zero", cents: -5, pct: 50, expected: -3},
		{name: "zero percent", cents: 999, pct: 0, expected: 0},
		{name: "full", cents: 999, pct: 100, expected: 999},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, money.NewMoney(tc.cents).Percent(tc.pct).Cents())
		})
	}
}

func TestNewNonNegative(t *testing.T) {
	m, err := money.NewNonNegative(0)
	require.NoError(t, err)
	assert.True(t, m.IsZero())

	_, err = money.NewNonNegative(-1)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrValidation))
}
