// Package renderer renders valuation reports to markdown.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/equity"
)

// ValuationMarkdown renders one cash flow valuation to markdown.
func ValuationMarkdown(v *equity.Valuation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Equity Cash Flow %s\n\n", v.Index)

	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Base date | %s |\n", v.BaseDate)
	fmt.Fprintf(&b, "| Fixing date | %s |\n", v.FixingDate)
	fmt.Fprintf(&b, "| Payment date | %s |\n", v.PaymentDate)
	fmt.Fprintf(&b, "| Notional | %s |\n", v.Notional)
	fmt.Fprintf(&b, "| Index start | %.4f |\n", v.IndexStart)
	fmt.Fprintf(&b, "| Index end | %.4f |\n", v.IndexEnd)
	fmt.Fprintf(&b, "| Return | %s |\n", v.Return.SignedString())
	fmt.Fprintf(&b, "| **Amount** | **%s** |\n", v.Amount.SignedString())

	if q := v.Quanto; q != nil {
		fmt.Fprintf(&b, "\n## Quanto adjustment\n\n")
		fmt.Fprintln(&b, "| | |")
		fmt.Fprintln(&b, "|:---|---:|")
		fmt.Fprintf(&b, "| Reference date | %s |\n", q.Reference)
		fmt.Fprintf(&b, "| Year fraction | %.6f |\n", q.Time)
		fmt.Fprintf(&b, "| Quanto ccy rate | %.4f%% |\n", 100*q.Rate)
		fmt.Fprintf(&b, "| Dividend yield | %.4f%% |\n", 100*q.Dividend)
		fmt.Fprintf(&b, "| Equity vol | %.4f%% |\n", 100*q.EquityVol)
		fmt.Fprintf(&b, "| FX vol | %.4f%% |\n", 100*q.FXVol)
		fmt.Fprintf(&b, "| Correlation | %.4f |\n", q.Correlation)
		fmt.Fprintf(&b, "| Spot | %.4f |\n", q.Spot)
		fmt.Fprintf(&b, "| Quanto forward | %.4f |\n", q.Forward)
	}
	return b.String()
}
