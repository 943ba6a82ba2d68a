package equity

import (
	"testing"
	"time"

	"github.com/etnz/equity/date"
)

// testVars is the market of a valuation desk on 2023-01-27: a local curve, a
// dividend curve, a quanto currency curve, flat volatilities, a spot quote
// and two recorded fixings.
type testVars struct {
	today    date.Date
	notional float64

	local    *Handle[YieldCurve]
	dividend *Handle[YieldCurve]
	quanto   *Handle[YieldCurve]

	equityVol *Handle[VolSurface]
	fxVol     *Handle[VolSurface]

	spot        *Handle[Quote]
	correlation *Handle[Quote]

	index *Index

	start, end date.Date
}

func newTestVars(t *testing.T) *testVars {
	t.Helper()
	// the fixing store is process-global, start each test from a clean one
	ClearFixings("XEQ")

	v := &testVars{
		today:    date.New(2023, time.January, 27),
		notional: 1.0e7,
		start:    date.New(2023, time.January, 5),
		end:      date.New(2023, time.April, 5),
	}

	v.local = NewHandle[YieldCurve](NewFlatYieldCurve(v.today, 0.0375, date.Act365Fixed))
	v.dividend = NewHandle[YieldCurve](NewFlatYieldCurve(v.today, 0.005, date.Act365Fixed))
	v.quanto = NewHandle[YieldCurve](NewFlatYieldCurve(v.today, 0.001, date.Act365Fixed))

	v.equityVol = NewHandle[VolSurface](NewFlatVolSurface(v.today, 0.4))
	v.fxVol = NewHandle[VolSurface](NewFlatVolSurface(v.today, 0.2))

	v.spot = NewHandle[Quote](NewSimpleQuote(8700.0))
	v.correlation = NewHandle[Quote](NewSimpleQuote(0.4))

	v.index = NewIndex("XEQ", date.NewCalendar("weekends"), v.local, v.dividend, v.spot)
	v.index.AddFixing(v.start, 9010.0)
	v.index.AddFixing(v.today, 8690.0)

	return v
}

// cashFlow returns a cash flow over the fixture period, paying on the fixing
// date, with the default simple-return pricer.
func (v *testVars) cashFlow(index *Index) *CashFlow {
	return NewCashFlow(v.notional, index, v.start, v.end, v.end)
}

// quantoPricer builds the quanto pricer from the fixture handles.
func (v *testVars) quantoPricer() *QuantoPricer {
	return NewQuantoPricer(v.quanto, v.equityVol, v.fxVol, v.correlation)
}

// bumpMarketData relinks every handle to new market data objects.
func (v *testVars) bumpMarketData() {
	v.local.Link(NewFlatYieldCurve(v.today, 0.04, date.Act365Fixed))
	v.dividend.Link(NewFlatYieldCurve(v.today, 0.01, date.Act365Fixed))
	v.quanto.Link(NewFlatYieldCurve(v.today, 0.03, date.Act365Fixed))

	v.equityVol.Link(NewFlatVolSurface(v.today, 0.45))
	v.fxVol.Link(NewFlatVolSurface(v.today, 0.25))

	v.spot.Link(NewSimpleQuote(8710.0))
}
