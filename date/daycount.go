package date

import "fmt"

// DayCount is a day-count convention, the basis on which a term structure
// converts a pair of dates into a year fraction.
type DayCount string

const (
	// Act365Fixed is the ACT/365 Fixed convention, the standard basis for
	// curve time axes.
	Act365Fixed DayCount = "ACT/365F"
	// Act360 counts actual days over a 360-day year.
	Act360 DayCount = "ACT/360"
	// Thirty360 is the 30/360 US bond basis.
	Thirty360 DayCount = "30/360"
)

// ParseDayCount parses a day-count convention from its standard name.
func ParseDayCount(s string) (DayCount, error) {
	switch DayCount(s) {
	case Act365Fixed, Act360, Thirty360:
		return DayCount(s), nil
	}
	return "", fmt.Errorf("unknown day count convention %q", s)
}

// YearFraction returns the elapsed time from 'from' to 'to' in years, on
// this basis. It is negative when 'to' is before 'from'.
func (dc DayCount) YearFraction(from, to Date) float64 {
	switch dc {
	case Act360:
		return float64(to.Sub(from)) / 360.0
	case Thirty360:
		d1, d2 := from.Day(), to.Day()
		if d1 == 31 {
			d1 = 30
		}
		if d2 == 31 && d1 == 30 {
			d2 = 30
		}
		days := 360*(to.Year()-from.Year()) + 30*(int(to.Month())-int(from.Month())) + (d2 - d1)
		return float64(days) / 360.0
	default: // Act365Fixed
		return float64(to.Sub(from)) / 365.0
	}
}

func (dc DayCount) String() string { return string(dc) }
