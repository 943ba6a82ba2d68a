package equity

import (
	"fmt"

	"github.com/etnz/equity/date"
)

// CashFlow is a single equity-return cash flow: it pays, at the payment
// date, the percentage return of its index between the base date and the
// fixing date, scaled by the notional.
//
// The amount is computed lazily and cached. Any change in the market data
// reachable from the index or the pricer, a relink or a quote update, marks
// the cache stale; the next Amount call recomputes.
type CashFlow struct {
	notional float64
	index    *Index

	baseDate    date.Date
	fixingDate  date.Date
	paymentDate date.Date

	pricer Pricer
	amount float64
	fresh  bool
}

// NewCashFlow returns a cash flow on the given index. The fixing date is
// typically the payment date. The cash flow starts with the plain
// simple-return pricer attached; use SetPricer for the quanto variant.
//
// The notional may be negative (a short position). Date ordering is not
// validated here: like the rest of the valuation, it is checked lazily by
// Amount.
func NewCashFlow(notional float64, index *Index, baseDate, fixingDate, paymentDate date.Date) *CashFlow {
	cf := &CashFlow{
		notional:    notional,
		index:       index,
		baseDate:    baseDate,
		fixingDate:  fixingDate,
		paymentDate: paymentDate,
	}
	index.Attach(cf)
	cf.SetPricer(&SimpleReturnPricer{})
	return cf
}

// Notional returns the signed notional of the cash flow.
func (cf *CashFlow) Notional() float64 { return cf.notional }

// Index returns the underlying equity index.
func (cf *CashFlow) Index() *Index { return cf.index }

// BaseDate returns the start of the return period.
func (cf *CashFlow) BaseDate() date.Date { return cf.baseDate }

// FixingDate returns the date on which the closing index level is observed.
func (cf *CashFlow) FixingDate() date.Date { return cf.fixingDate }

// PaymentDate returns the date on which the amount is paid.
func (cf *CashFlow) PaymentDate() date.Date { return cf.paymentDate }

// Pricer returns the currently attached pricer.
func (cf *CashFlow) Pricer() Pricer { return cf.pricer }

// SetPricer replaces the pricer and invalidates the cached amount. One
// pricer may be shared by several cash flows.
func (cf *CashFlow) SetPricer(p Pricer) {
	if cf.pricer != nil {
		cf.pricer.Detach(cf)
	}
	cf.pricer = p
	if p != nil {
		p.Attach(cf)
	}
	cf.fresh = false
}

// Update marks the cached amount stale. It never recomputes: that happens on
// the next Amount call.
func (cf *CashFlow) Update() { cf.fresh = false }

// Amount returns the cash amount of the flow, recomputing it only if market
// data changed since the last call.
func (cf *CashFlow) Amount() (float64, error) {
	if cf.fresh {
		return cf.amount, nil
	}
	if cf.fixingDate.Before(cf.baseDate) {
		return 0, &DateOrderingError{Base: cf.baseDate, Fixing: cf.fixingDate}
	}
	if cf.pricer == nil {
		return 0, fmt.Errorf("cash flow has no pricer attached")
	}
	a, err := cf.pricer.Amount(cf)
	if err != nil {
		return 0, err
	}
	cf.amount, cf.fresh = a, true
	return a, nil
}
