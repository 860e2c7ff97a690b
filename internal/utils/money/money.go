package money

import (
	"fmt"

	"github.com/planwise/budget_planner_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// percentTolerance is the absolute tolerance used when checking that a set of
// percentages sums to 100. Percentages are entered independently, so small
// floating-point drift from client-side math is acceptable.
var percentTolerance = decimal.New(1, -2) // 0.01

// DistributeAmount splits total into parts amounts of two decimal places.
// Each amount is total/parts floored to the cent; the rounding remainder is
// added entirely to the last element, so the returned amounts always sum to
// total (rounded to the cent) exactly. The asymmetric remainder placement is
// deterministic and auditable rather than "fair".
func DistributeAmount(total decimal.Decimal, parts int) ([]decimal.Decimal, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("%w: parts must be positive, got %d", apperrors.ErrValidation, parts)
	}

	rounded := total.Round(2)
	base := rounded.Div(decimal.NewFromInt(int64(parts))).RoundFloor(2)

	amounts := make([]decimal.Decimal, parts)
	for i := range amounts {
		amounts[i] = base
	}
	// Remainder goes to the last installment.
	amounts[parts-1] = rounded.Sub(base.Mul(decimal.NewFromInt(int64(parts - 1))))

	return amounts, nil
}

// ValidatePercentages sums the given percentages and reports whether they add
// up to 100 within tolerance. The rounded total is returned for display
// regardless of validity; callers treat the result as advisory, since under-
// and over-allocation are valid, visible states.
func ValidatePercentages(values []decimal.Decimal) (bool, decimal.Decimal) {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}

	valid := sum.Sub(hundred).Abs().LessThan(percentTolerance)
	return valid, sum.Round(2)
}
