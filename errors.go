package equity

import (
	"fmt"

	"github.com/etnz/equity/date"
)

// MissingFixingError reports a historical index level absent from the fixing
// store.
type MissingFixingError struct {
	Name string
	On   date.Date
}

func (e *MissingFixingError) Error() string {
	return fmt.Sprintf("missing %s fixing for %s", e.Name, e.On)
}

// DateOrderingError reports a cash flow whose fixing date precedes its base
// date. It is detected at valuation time, like the rest of the cash flow's
// lazy validation.
type DateOrderingError struct {
	Base, Fixing date.Date
}

func (e *DateOrderingError) Error() string {
	return "Fixing date cannot fall before base date."
}

// MissingMarketDataError reports an empty handle on a quanto pricer at
// valuation time.
type MissingMarketDataError struct{}

func (e *MissingMarketDataError) Error() string {
	return "Quanto currency, equity and FX volatility term structure handles cannot be empty."
}

// InconsistentReferenceDateError reports market data objects combined in one
// quanto formula that do not measure time from the same date.
type InconsistentReferenceDateError struct {
	Quanto, EquityVol, FXVol date.Date
}

func (e *InconsistentReferenceDateError) Error() string {
	return "Quanto currency term structure, equity and FX volatility need to have the same reference date."
}
