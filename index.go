package equity

import (
	"fmt"

	"github.com/etnz/equity/date"
)

// fixingStore is the process-global store of historical index levels.
// Every index with the same name, clones included, shares one history.
var fixingStore = make(map[string]*date.History[float64])

// fixingHistory returns the (possibly empty) history for an index name,
// creating it on first use.
func fixingHistory(name string) *date.History[float64] {
	h, ok := fixingStore[name]
	if !ok {
		h = &date.History[float64]{}
		fixingStore[name] = h
	}
	return h
}

// ClearFixings removes every recorded fixing for an index name.
func ClearFixings(name string) { fixingHistory(name).Clear() }

// Index is an equity index or basket underlying an equity cash flow.
//
// It answers what the index level was, or is expected to be, on a given
// date: past levels come from the shared fixing history, future levels are
// forecast from the attached spot quote and curves. The index forwards
// change notifications from its handles to its own observers.
type Index struct {
	signal
	name     string
	calendar date.Calendar
	forecast *Handle[YieldCurve]
	dividend *Handle[YieldCurve]
	spot     *Handle[Quote]
}

// NewIndex returns an index bound to the given market data. Nil handles are
// replaced with empty ones, so a dividend-free (price-return) index is
// simply built with a nil or empty dividend handle.
func NewIndex(name string, cal date.Calendar, forecast, dividend *Handle[YieldCurve], spot *Handle[Quote]) *Index {
	if forecast == nil {
		forecast = EmptyHandle[YieldCurve]()
	}
	if dividend == nil {
		dividend = EmptyHandle[YieldCurve]()
	}
	if spot == nil {
		spot = EmptyHandle[Quote]()
	}
	idx := &Index{name: name, calendar: cal, forecast: forecast, dividend: dividend, spot: spot}
	forecast.Attach(idx)
	dividend.Attach(idx)
	spot.Attach(idx)
	return idx
}

// Name returns the index name, the key into the shared fixing store.
func (idx *Index) Name() string { return idx.name }

// Calendar returns the index fixing calendar.
func (idx *Index) Calendar() date.Calendar { return idx.calendar }

// Forecast returns the risk-free curve handle used to project the spot.
func (idx *Index) Forecast() *Handle[YieldCurve] { return idx.forecast }

// Dividend returns the dividend yield curve handle. It is empty for a
// price-return index.
func (idx *Index) Dividend() *Handle[YieldCurve] { return idx.dividend }

// Spot returns the spot quote handle.
func (idx *Index) Spot() *Handle[Quote] { return idx.spot }

// Update forwards a market data change to the index's own observers.
func (idx *Index) Update() { idx.notify() }

// AddFixing records the index level observed on a date. A later write on the
// same date overwrites the previous one.
func (idx *Index) AddFixing(on date.Date, level float64) {
	fixingHistory(idx.name).Append(on, level)
	idx.notify()
}

// Fixings returns the shared fixing history of the index.
func (idx *Index) Fixings() *date.History[float64] { return fixingHistory(idx.name) }

// Fixing returns the index level on 'on'.
//
// Dates after the forecast curve's reference date (the evaluation date, as
// far as the index is concerned) are always forecast as the risk-neutral
// forward of the spot: a fixing recorded in the future never shadows the
// forward. The history is consulted only for dates on or before the
// reference date; absent levels fail with a MissingFixingError.
func (idx *Index) Fixing(on date.Date) (float64, error) {
	if !idx.forecast.Empty() && on.After(idx.forecast.Target().ReferenceDate()) {
		return idx.forecastFixing(on)
	}
	if v, ok := fixingHistory(idx.name).Get(on); ok {
		return v, nil
	}
	return 0, &MissingFixingError{Name: idx.name, On: on}
}

// forecastFixing grows the spot at the forecast rate, net of dividends when
// a dividend curve is attached.
func (idx *Index) forecastFixing(on date.Date) (float64, error) {
	if idx.spot.Empty() {
		return 0, fmt.Errorf("index %q: cannot forecast fixing for %s: spot handle is empty", idx.name, on)
	}
	f := idx.spot.Target().Value() / idx.forecast.Target().Discount(on)
	if !idx.dividend.Empty() {
		f *= idx.dividend.Target().Discount(on)
	}
	return f, nil
}

// Clone returns an index sharing this index's name and fixing history, bound
// to substitute market data. It is how variants of one underlying are
// modeled, e.g. the price-return flavor of a total-return index, without
// duplicating the history.
func (idx *Index) Clone(forecast, dividend *Handle[YieldCurve], spot *Handle[Quote]) *Index {
	return NewIndex(idx.name, idx.calendar, forecast, dividend, spot)
}
