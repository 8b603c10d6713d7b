package finguide

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal.
// Non-finite floats are mapped to zero: they only reach formatting code after
// the profile has clamped its totals, so rendering zero is the contract.
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return newDecimal(float64(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a monetary value in a given currency.
type Money struct {
	value decimal.Decimal
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// Rupees returns the value as INR money, the app's working currency.
func Rupees[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return M(value, "INR")
}

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

func (m Money) Currency() string      { return m.cur }
func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool          { return m.value.IsZero() }
func (m Money) IsPositive() bool      { return m.value.IsPositive() }
func (m Money) IsNegative() bool      { return m.value.IsNegative() }
func (m Money) Neg() Money            { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Add(n Money) Money     { return Money{value: m.value.Add(n.value), cur: m.cur} }
func (m Money) Sub(n Money) Money     { return Money{value: m.value.Sub(n.value), cur: m.cur} }
func (m Money) InexactFloat() float64 { return m.value.InexactFloat64() }

// String renders the value rounded to whole units, with the currency grapheme
// and en-IN digit grouping (₹12,34,567): the last three digits form a group,
// every group before that is a pair.
func (m Money) String() string {
	cur := m.currency()
	v := m.value.Round(0)
	s := groupIndian(v.Abs().String())
	if v.IsNegative() {
		s = "-" + s
	}
	return cur.Grapheme + s
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",") + "," + tail
}
