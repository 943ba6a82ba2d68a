package equity

import (
	"github.com/etnz/equity/date"
)

// Valuation is the full echo of one cash flow amount computation, for
// reporting. It is a plain snapshot: building a new one after a market data
// change is how reports stay honest.
type Valuation struct {
	Index       string
	BaseDate    date.Date
	FixingDate  date.Date
	PaymentDate date.Date
	Notional    Money
	Amount      Money
	Return      Percent
	IndexStart  float64
	IndexEnd    float64
	Quanto      *QuantoDetails // nil for a plain simple-return valuation
}

// QuantoDetails echoes the inputs of the quanto drift correction.
type QuantoDetails struct {
	Reference   date.Date
	Time        float64
	Rate        float64 // quanto currency zero rate
	Dividend    float64 // dividend yield, 0 for a price-return index
	EquityVol   float64
	FXVol       float64
	Correlation float64
	Spot        float64
	Forward     float64
}

// NewValuation values the cash flow and snapshots every input that went into
// the amount, in the given payoff currency.
func NewValuation(cf *CashFlow, currency string) (*Valuation, error) {
	amount, err := cf.Amount()
	if err != nil {
		return nil, err
	}
	start, err := cf.Index().Fixing(cf.BaseDate())
	if err != nil {
		return nil, err
	}
	end, err := cf.Index().Fixing(cf.FixingDate())
	if err != nil {
		return nil, err
	}

	v := &Valuation{
		Index:       cf.Index().Name(),
		BaseDate:    cf.BaseDate(),
		FixingDate:  cf.FixingDate(),
		PaymentDate: cf.PaymentDate(),
		Notional:    M(cf.Notional(), currency),
		Amount:      M(amount, currency),
		Return:      Percent(100 * amount / cf.Notional()),
		IndexStart:  start,
		IndexEnd:    end,
	}

	if p, ok := cf.Pricer().(*QuantoPricer); ok {
		v.Quanto = quantoDetails(p, cf, start)
	}
	return v, nil
}

// quantoDetails re-reads the pricer's market data. Amount succeeded, so the
// handles are known to be populated and consistent.
func quantoDetails(p *QuantoPricer, cf *CashFlow, indexStart float64) *QuantoDetails {
	quanto := p.quanto.Target()
	tau := quanto.TimeFromReference(cf.FixingDate())
	strike, _ := cf.Index().Fixing(cf.FixingDate())
	q := 0.0
	if !cf.Index().Dividend().Empty() {
		q = cf.Index().Dividend().Target().ZeroRate(tau)
	}
	spot := cf.Index().Spot().Target().Value()
	amount, _ := cf.Amount()
	return &QuantoDetails{
		Reference:   quanto.ReferenceDate(),
		Time:        tau,
		Rate:        quanto.ZeroRate(tau),
		Dividend:    q,
		EquityVol:   p.equityVol.Target().Vol(cf.FixingDate(), strike),
		FXVol:       p.fxVol.Target().Vol(cf.FixingDate(), atmStrike),
		Correlation: p.correlation.Target().Value(),
		Spot:        spot,
		Forward:     indexStart * (amount/cf.Notional() + 1),
	}
}

// MarshalJSON writes the valuation with fields in reading order.
func (v *Valuation) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("index", v.Index)
	w.Append("baseDate", v.BaseDate)
	w.Append("fixingDate", v.FixingDate)
	w.Append("paymentDate", v.PaymentDate)
	w.Append("notional", v.Notional)
	w.Append("amount", v.Amount)
	w.Append("return", v.Return.String())
	w.Append("indexStart", v.IndexStart)
	w.Append("indexEnd", v.IndexEnd)
	if v.Quanto != nil {
		w.Append("quanto", *v.Quanto)
	}
	return w.MarshalJSON()
}
