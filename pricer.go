package equity

import (
	"fmt"
	"math"
)

// atmStrike is the strike at which the FX volatility surface is observed.
// The at-the-money convention is a fixed 1.0 strike query; preserve it
// exactly.
const atmStrike = 1.0

// Pricer computes the amount of an equity cash flow.
//
// Pricers are observable: a cash flow registers with its pricer so that
// market data changes flowing through the pricer's handles invalidate the
// cash flow's cache.
type Pricer interface {
	Observable
	// Amount values the given cash flow against current market data.
	Amount(cf *CashFlow) (float64, error)
}

// SimpleReturnPricer pays the percentage return of the index with no
// currency adjustment:
//
//	amount = notional * (fixing(fixingDate)/fixing(baseDate) - 1)
//
// It reads no market data of its own, everything comes through the index.
type SimpleReturnPricer struct {
	signal
}

func (p *SimpleReturnPricer) Amount(cf *CashFlow) (float64, error) {
	start, err := cf.index.Fixing(cf.baseDate)
	if err != nil {
		return 0, err
	}
	end, err := cf.index.Fixing(cf.fixingDate)
	if err != nil {
		return 0, err
	}
	return cf.notional * (end/start - 1.0), nil
}

var _ Pricer = (*SimpleReturnPricer)(nil)

// QuantoPricer values an equity cash flow whose index is denominated in a
// currency different from the payoff currency, with no FX conversion of the
// payoff. The forward of the index is drift-adjusted by the covariance
// between the index and the FX rate:
//
//	F = S0 * exp((r_f - q - rho*sigEq*sigFx) * tau)
//	amount = notional * (F/fixing(baseDate) - 1)
//
// where r_f is the quanto currency zero rate, q the dividend yield, rho the
// index/FX correlation and tau the year fraction to the fixing date on the
// quanto curve's basis.
type QuantoPricer struct {
	signal
	quanto      *Handle[YieldCurve]
	equityVol   *Handle[VolSurface]
	fxVol       *Handle[VolSurface]
	correlation *Handle[Quote]
}

// NewQuantoPricer returns a quanto pricer reading the given handles. Handles
// may be empty at construction time; they are validated when the pricer is
// asked for an amount. Nil handles are replaced with empty ones.
func NewQuantoPricer(quanto *Handle[YieldCurve], equityVol, fxVol *Handle[VolSurface], correlation *Handle[Quote]) *QuantoPricer {
	if quanto == nil {
		quanto = EmptyHandle[YieldCurve]()
	}
	if equityVol == nil {
		equityVol = EmptyHandle[VolSurface]()
	}
	if fxVol == nil {
		fxVol = EmptyHandle[VolSurface]()
	}
	if correlation == nil {
		correlation = EmptyHandle[Quote]()
	}
	p := &QuantoPricer{quanto: quanto, equityVol: equityVol, fxVol: fxVol, correlation: correlation}
	quanto.Attach(p)
	equityVol.Attach(p)
	fxVol.Attach(p)
	correlation.Attach(p)
	return p
}

// Update forwards a market data change to the cash flows observing this
// pricer.
func (p *QuantoPricer) Update() { p.notify() }

func (p *QuantoPricer) Amount(cf *CashFlow) (float64, error) {
	if p.quanto.Empty() || p.equityVol.Empty() || p.fxVol.Empty() {
		return 0, &MissingMarketDataError{}
	}
	quanto := p.quanto.Target()
	eqVol := p.equityVol.Target()
	fxVol := p.fxVol.Target()
	if quanto.ReferenceDate() != eqVol.ReferenceDate() || quanto.ReferenceDate() != fxVol.ReferenceDate() {
		return 0, &InconsistentReferenceDateError{
			Quanto:    quanto.ReferenceDate(),
			EquityVol: eqVol.ReferenceDate(),
			FXVol:     fxVol.ReferenceDate(),
		}
	}
	if p.correlation.Empty() {
		return 0, fmt.Errorf("correlation handle cannot be empty")
	}
	if cf.index.Spot().Empty() {
		return 0, fmt.Errorf("index %q spot handle cannot be empty", cf.index.Name())
	}

	strike, err := cf.index.Fixing(cf.fixingDate)
	if err != nil {
		return 0, err
	}
	indexStart, err := cf.index.Fixing(cf.baseDate)
	if err != nil {
		return 0, err
	}

	tau := quanto.TimeFromReference(cf.fixingDate)
	rf := quanto.ZeroRate(tau)
	q := 0.0
	if !cf.index.Dividend().Empty() {
		q = cf.index.Dividend().Target().ZeroRate(tau)
	}
	sigEq := eqVol.Vol(cf.fixingDate, strike)
	sigFx := fxVol.Vol(cf.fixingDate, atmStrike)
	rho := p.correlation.Target().Value()
	spot := cf.index.Spot().Target().Value()

	forward := spot * math.Exp((rf-q-rho*sigEq*sigFx)*tau)
	return cf.notional * (forward/indexStart - 1.0), nil
}

var _ Pricer = (*QuantoPricer)(nil)
