package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/equity"
	"github.com/etnz/equity/date"
)

func TestValuationMarkdown(t *testing.T) {
	v := &equity.Valuation{
		Index:       "XEQ",
		BaseDate:    date.New(2023, time.January, 5),
		FixingDate:  date.New(2023, time.April, 5),
		PaymentDate: date.New(2023, time.April, 5),
		Notional:    equity.M(1.0e7, "EUR"),
		Amount:      equity.M(500_000, "EUR"),
		Return:      equity.Percent(5.0),
		IndexStart:  9010.0,
		IndexEnd:    9460.5,
	}

	md := ValuationMarkdown(v)

	for _, want := range []string{
		"# Equity Cash Flow XEQ",
		"| Base date | 2023-01-05 |",
		"| Fixing date | 2023-04-05 |",
		"| Payment date | 2023-04-05 |",
		"| Index start | 9010.0000 |",
		"| Index end | 9460.5000 |",
		"| Return | +5.00% |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("ValuationMarkdown() missing %q in:\n%s", want, md)
		}
	}
	if strings.Contains(md, "Quanto") {
		t.Errorf("ValuationMarkdown() has a quanto section for a plain valuation:\n%s", md)
	}
}

func TestValuationMarkdownQuanto(t *testing.T) {
	v := &equity.Valuation{
		Index:       "XEQ",
		BaseDate:    date.New(2023, time.January, 5),
		FixingDate:  date.New(2023, time.April, 5),
		PaymentDate: date.New(2023, time.April, 5),
		Notional:    equity.M(1.0e7, "EUR"),
		Amount:      equity.M(-425_000, "EUR"),
		Return:      equity.Percent(-4.25),
		IndexStart:  9010.0,
		IndexEnd:    8627.0,
		Quanto: &equity.QuantoDetails{
			Reference:   date.New(2023, time.January, 27),
			Time:        68.0 / 365.0,
			Rate:        0.001,
			Dividend:    0.005,
			EquityVol:   0.4,
			FXVol:       0.2,
			Correlation: 0.4,
			Spot:        8700.0,
			Forward:     8627.0,
		},
	}

	md := ValuationMarkdown(v)

	for _, want := range []string{
		"## Quanto adjustment",
		"| Reference date | 2023-01-27 |",
		"| Quanto ccy rate | 0.1000% |",
		"| Dividend yield | 0.5000% |",
		"| Equity vol | 40.0000% |",
		"| FX vol | 20.0000% |",
		"| Correlation | 0.4000 |",
		"| Spot | 8700.0000 |",
		"| Return | -4.25% |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("ValuationMarkdown() missing %q in:\n%s", want, md)
		}
	}
}
