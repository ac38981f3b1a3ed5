package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// currency returns the go-money currency for code. Unknown codes get a
// currency with no fraction digits.
func currency(code string) money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, code).Currency()
}

// Money formats price in the currency style of code.
func Money(price decimal.Decimal, code string) string {
	cur := currency(code)
	minor := price.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// SignedMoney is like Money but always shows the sign of a non zero price.
// Zero is rendered as "-".
func SignedMoney(price decimal.Decimal, code string) string {
	switch {
	case price.IsZero():
		return "-"
	case price.IsPositive():
		return "+" + Money(price, code)
	default:
		return Money(price, code)
	}
}
