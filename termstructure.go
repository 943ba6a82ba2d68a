package equity

import (
	"math"

	"github.com/etnz/equity/date"
)

// YieldCurve is a zero/discount term structure. Curves combined in one
// formula must share the same reference date.
type YieldCurve interface {
	// ReferenceDate is the date from which the curve measures elapsed time.
	ReferenceDate() date.Date
	// DayCount is the basis on which the curve converts dates to times.
	DayCount() date.DayCount
	// TimeFromReference returns the year fraction from the reference date
	// to 'on', on the curve's day-count basis.
	TimeFromReference(on date.Date) float64
	// Discount returns the discount factor from the reference date to 'on'.
	Discount(on date.Date) float64
	// ZeroRate returns the continuously compounded zero rate for time t.
	ZeroRate(t float64) float64
}

// FlatYieldCurve is a curve with a single continuously compounded flat rate.
type FlatYieldCurve struct {
	reference date.Date
	rate      float64
	dayCount  date.DayCount
}

// NewFlatYieldCurve returns a flat curve with the given continuously
// compounded rate on the given basis.
func NewFlatYieldCurve(reference date.Date, rate float64, dc date.DayCount) *FlatYieldCurve {
	return &FlatYieldCurve{reference: reference, rate: rate, dayCount: dc}
}

func (c *FlatYieldCurve) ReferenceDate() date.Date { return c.reference }

func (c *FlatYieldCurve) DayCount() date.DayCount { return c.dayCount }

func (c *FlatYieldCurve) TimeFromReference(on date.Date) float64 {
	return c.dayCount.YearFraction(c.reference, on)
}

func (c *FlatYieldCurve) Discount(on date.Date) float64 {
	return math.Exp(-c.rate * c.TimeFromReference(on))
}

func (c *FlatYieldCurve) ZeroRate(t float64) float64 { return c.rate }

var _ YieldCurve = (*FlatYieldCurve)(nil)
