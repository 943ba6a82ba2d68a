package equity

import "github.com/etnz/equity/date"

// VolSurface is a Black volatility term structure, queried by exercise date
// and strike.
type VolSurface interface {
	// ReferenceDate is the date from which the surface measures elapsed time.
	ReferenceDate() date.Date
	// Vol returns the volatility for the given exercise date and strike.
	Vol(on date.Date, strike float64) float64
}

// FlatVolSurface quotes the same volatility for every date and strike.
type FlatVolSurface struct {
	reference date.Date
	vol       float64
}

// NewFlatVolSurface returns a flat Black volatility surface.
func NewFlatVolSurface(reference date.Date, vol float64) *FlatVolSurface {
	return &FlatVolSurface{reference: reference, vol: vol}
}

func (s *FlatVolSurface) ReferenceDate() date.Date { return s.reference }

func (s *FlatVolSurface) Vol(on date.Date, strike float64) float64 { return s.vol }

var _ VolSurface = (*FlatVolSurface)(nil)
