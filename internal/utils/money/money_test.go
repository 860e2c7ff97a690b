package money

import (
	"testing"

	"github.com/planwise/budget_planner_app/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributeAmount_RemainderOnLast(t *testing.T) {
	amounts, err := DistributeAmount(decimal.NewFromInt(100), 3)
	require.NoError(t, err)
	require.Len(t, amounts, 3)

	assert.True(t, amounts[0].Equal(decimal.RequireFromString("33.33")), "first part should be 33.33, got %s", amounts[0])
	assert.True(t, amounts[1].Equal(decimal.RequireFromString("33.33")), "second part should be 33.33, got %s", amounts[1])
	assert.True(t, amounts[2].Equal(decimal.RequireFromString("33.34")), "last part should carry the remainder, got %s", amounts[2])
}

func TestDistributeAmount_EvenSplit(t *testing.T) {
	amounts, err := DistributeAmount(decimal.RequireFromString("2999.00"), 10)
	require.NoError(t, err)
	require.Len(t, amounts, 10)

	for i := 0; i < 10; i++ {
		assert.True(t, amounts[i].Equal(decimal.RequireFromString("299.90")), "part %d should be 299.90, got %s", i, amounts[i])
	}
}

func TestDistributeAmount_SumEqualsTotal(t *testing.T) {
	cases := []struct {
		total string
		parts int
	}{
		{"100", 3},
		{"0.01", 2},
		{"1", 7},
		{"2999.00", 10},
		{"1234.56", 12},
		{"0.05", 6},
		{"999999.99", 13},
	}

	for _, tc := range cases {
		total := decimal.RequireFromString(tc.total)
		amounts, err := DistributeAmount(total, tc.parts)
		require.NoError(t, err, "total=%s parts=%d", tc.total, tc.parts)
		require.Len(t, amounts, tc.parts)

		sum := decimal.Zero
		for _, a := range amounts {
			sum = sum.Add(a)
		}
		assert.True(t, sum.Equal(total.Round(2)),
			"sum of parts must equal the rounded total: total=%s parts=%d sum=%s", tc.total, tc.parts, sum)
	}
}

func TestDistributeAmount_SinglePart(t *testing.T) {
	amounts, err := DistributeAmount(decimal.RequireFromString("42.37"), 1)
	require.NoError(t, err)
	require.Len(t, amounts, 1)
	assert.True(t, amounts[0].Equal(decimal.RequireFromString("42.37")))
}

func TestDistributeAmount_InvalidParts(t *testing.T) {
	_, err := DistributeAmount(decimal.NewFromInt(100), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = DistributeAmount(decimal.NewFromInt(100), -3)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidatePercentages(t *testing.T) {
	valid, total := ValidatePercentages([]decimal.Decimal{
		decimal.NewFromInt(50),
		decimal.NewFromInt(30),
		decimal.NewFromInt(20),
	})
	assert.True(t, valid)
	assert.True(t, total.Equal(decimal.NewFromInt(100)), "total should be 100, got %s", total)

	valid, total = ValidatePercentages([]decimal.Decimal{
		decimal.NewFromInt(50),
		decimal.NewFromInt(30),
		decimal.NewFromInt(25),
	})
	assert.False(t, valid, "over-allocation must be reported as invalid")
	assert.True(t, total.Equal(decimal.NewFromInt(105)), "total should still be returned, got %s", total)
}

func TestValidatePercentages_Tolerance(t *testing.T) {
	// Three thirds entered independently drift below 100 by less than a cent.
	third := decimal.RequireFromString("33.333")
	valid, total := ValidatePercentages([]decimal.Decimal{third, third, third})
	assert.True(t, valid, "99.999 is within the 0.01 tolerance")
	assert.True(t, total.Equal(decimal.RequireFromString("100.00")), "rounded total, got %s", total)

	// Exactly 0.01 off is outside the strict tolerance.
	valid, total = ValidatePercentages([]decimal.Decimal{
		decimal.RequireFromString("50.00"),
		decimal.RequireFromString("49.99"),
	})
	assert.False(t, valid)
	assert.True(t, total.Equal(decimal.RequireFromString("99.99")))
}

func TestValidatePercentages_Empty(t *testing.T) {
	valid, total := ValidatePercentages(nil)
	assert.False(t, valid)
	assert.True(t, total.Equal(decimal.Zero))
}
