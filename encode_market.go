package equity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/equity/date"
	"github.com/shopspring/decimal"
)

// Market is the content of a market data file: the flat curves, volatility
// surfaces, quotes and index fixings a valuation reads.
//
// Values are carried as decimals so that a decode/encode round trip
// preserves them exactly. Handles are built lazily, once per name, so every
// consumer of the market shares the same handle; SetQuote relinks the shared
// handle and therefore invalidates every dependent cash flow.
type Market struct {
	reference date.Date
	dayCount  date.DayCount

	rates   map[string]decimal.Decimal
	vols    map[string]decimal.Decimal
	quotes  map[string]decimal.Decimal
	fixings map[string]map[string]decimal.Decimal // index name -> date string -> level

	curveHandles map[string]*Handle[YieldCurve]
	volHandles   map[string]*Handle[VolSurface]
	quoteHandles map[string]*Handle[Quote]
}

// NewMarket returns an empty market with the given reference date and basis.
func NewMarket(reference date.Date, dc date.DayCount) *Market {
	return &Market{
		reference:    reference,
		dayCount:     dc,
		rates:        make(map[string]decimal.Decimal),
		vols:         make(map[string]decimal.Decimal),
		quotes:       make(map[string]decimal.Decimal),
		fixings:      make(map[string]map[string]decimal.Decimal),
		curveHandles: make(map[string]*Handle[YieldCurve]),
		volHandles:   make(map[string]*Handle[VolSurface]),
		quoteHandles: make(map[string]*Handle[Quote]),
	}
}

// Reference returns the date from which every term structure in the file
// measures elapsed time.
func (m *Market) Reference() date.Date { return m.reference }

// DayCount returns the basis shared by the file's curves.
func (m *Market) DayCount() date.DayCount { return m.dayCount }

// SetRate declares (or updates) a flat zero curve. An existing handle for
// that name is relinked, invalidating its dependents.
func (m *Market) SetRate(name string, rate float64) {
	m.rates[name] = decimal.NewFromFloat(rate)
	if h, ok := m.curveHandles[name]; ok {
		h.Link(NewFlatYieldCurve(m.reference, rate, m.dayCount))
	}
}

// SetVol declares (or updates) a flat volatility surface.
func (m *Market) SetVol(name string, vol float64) {
	m.vols[name] = decimal.NewFromFloat(vol)
	if h, ok := m.volHandles[name]; ok {
		h.Link(NewFlatVolSurface(m.reference, vol))
	}
}

// SetQuote declares (or updates) a scalar quote. An existing handle for that
// name is relinked, invalidating its dependents.
func (m *Market) SetQuote(name string, value float64) {
	m.quotes[name] = decimal.NewFromFloat(value)
	if h, ok := m.quoteHandles[name]; ok {
		h.Link(NewSimpleQuote(value))
	}
}

// Curve returns the shared handle for a named flat curve.
func (m *Market) Curve(name string) (*Handle[YieldCurve], error) {
	if h, ok := m.curveHandles[name]; ok {
		return h, nil
	}
	rate, ok := m.rates[name]
	if !ok {
		return nil, fmt.Errorf("market has no curve %q", name)
	}
	h := NewHandle[YieldCurve](NewFlatYieldCurve(m.reference, rate.InexactFloat64(), m.dayCount))
	m.curveHandles[name] = h
	return h, nil
}

// Vol returns the shared handle for a named flat volatility surface.
func (m *Market) Vol(name string) (*Handle[VolSurface], error) {
	if h, ok := m.volHandles[name]; ok {
		return h, nil
	}
	vol, ok := m.vols[name]
	if !ok {
		return nil, fmt.Errorf("market has no volatility surface %q", name)
	}
	h := NewHandle[VolSurface](NewFlatVolSurface(m.reference, vol.InexactFloat64()))
	m.volHandles[name] = h
	return h, nil
}

// Quote returns the shared handle for a named quote.
func (m *Market) Quote(name string) (*Handle[Quote], error) {
	if h, ok := m.quoteHandles[name]; ok {
		return h, nil
	}
	value, ok := m.quotes[name]
	if !ok {
		return nil, fmt.Errorf("market has no quote %q", name)
	}
	h := NewHandle[Quote](NewSimpleQuote(value.InexactFloat64()))
	m.quoteHandles[name] = h
	return h, nil
}

// AddFixing records a historical index level in the market file content.
// The level is written straight into the process-global fixing store: an
// already built index reads it on its next recompute, but its dependents are
// not notified, so a cached amount survives until something else invalidates
// it. Use Index.AddFixing when dependents must reprice.
func (m *Market) AddFixing(index string, on date.Date, level float64) {
	if m.fixings[index] == nil {
		m.fixings[index] = make(map[string]decimal.Decimal)
	}
	m.fixings[index][on.String()] = decimal.NewFromFloat(level)
	fixingHistory(index).Append(on, level)
}

// Index builds the named index from the market content, following the file
// naming conventions: curve "<name>.forecast", optional curve
// "<name>.dividend", quote "<name>.spot". The file's fixings are seeded into
// the index fixing history.
func (m *Market) Index(name string) (*Index, error) {
	forecast, err := m.Curve(name + ".forecast")
	if err != nil {
		return nil, err
	}
	spot, err := m.Quote(name + ".spot")
	if err != nil {
		return nil, err
	}
	// The dividend curve is optional: without one the index is its
	// price-return variant.
	dividend := EmptyHandle[YieldCurve]()
	if _, ok := m.rates[name+".dividend"]; ok {
		dividend, _ = m.Curve(name + ".dividend")
	}

	idx := NewIndex(name, date.NewCalendar("weekends"), forecast, dividend, spot)
	for on, level := range m.fixings[name] {
		// dates were validated at decode time
		idx.AddFixing(date.MustParse(on), level.InexactFloat64())
	}
	return idx, nil
}

// jsMarket is the persistence format of a market file.
type jsMarket struct {
	Reference date.Date                             `json:"reference"`
	DayCount  string                                `json:"daycount"`
	Curves    map[string]decimal.Decimal            `json:"curves,omitempty"`
	Vols      map[string]decimal.Decimal            `json:"vols,omitempty"`
	Quotes    map[string]decimal.Decimal            `json:"quotes,omitempty"`
	Fixings   map[string]map[string]decimal.Decimal `json:"fixings,omitempty"`
}

// DecodeMarket reads a market data file.
func DecodeMarket(r io.Reader) (*Market, error) {
	var js jsMarket
	dec := json.NewDecoder(r)
	if err := dec.Decode(&js); err != nil {
		return nil, fmt.Errorf("invalid market file: %w", err)
	}
	dc, err := date.ParseDayCount(js.DayCount)
	if err != nil {
		return nil, fmt.Errorf("invalid market file: %w", err)
	}
	if js.Reference.IsZero() {
		return nil, fmt.Errorf("invalid market file: missing reference date")
	}
	m := NewMarket(js.Reference, dc)
	for name, rate := range js.Curves {
		m.rates[name] = rate
	}
	for name, vol := range js.Vols {
		m.vols[name] = vol
	}
	for name, value := range js.Quotes {
		m.quotes[name] = value
	}
	for index, points := range js.Fixings {
		for on, level := range points {
			if _, err := date.Parse(on); err != nil {
				return nil, fmt.Errorf("invalid market file: fixing for %q: %w", index, err)
			}
			if m.fixings[index] == nil {
				m.fixings[index] = make(map[string]decimal.Decimal)
			}
			m.fixings[index][on] = level
		}
	}
	return m, nil
}

// EncodeMarket writes the market in its file format, fields in a stable
// order.
func EncodeMarket(w io.Writer, m *Market) error {
	var jw jsonObjectWriter
	jw.Append("reference", m.reference)
	jw.Append("daycount", m.dayCount.String())
	if len(m.rates) > 0 {
		jw.Append("curves", m.rates)
	}
	if len(m.vols) > 0 {
		jw.Append("vols", m.vols)
	}
	if len(m.quotes) > 0 {
		jw.Append("quotes", m.quotes)
	}
	if len(m.fixings) > 0 {
		jw.Append("fixings", m.fixings)
	}
	content, err := jw.MarshalJSON()
	if err != nil {
		return err
	}
	// pretty print, the file is meant to be read and edited by humans
	var buf bytes.Buffer
	if err := json.Indent(&buf, content, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}
