package equity

import (
	"fmt"
	"math"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// QuoteFeed fetches the latest value of a quote from a JSON HTTP endpoint.
//
// The endpoint's response layout is not standardized across providers, so
// the value is located with a jsonpath expression, e.g.
// "$.series.intraday.data[-1:][1]" for an intraday series where the level is
// the second column of the last row.
type QuoteFeed struct {
	Name string // quote name in the market file
	URL  string
	Path string // jsonpath to the value in the response
}

// Latest fetches and extracts the current value of the quote.
func (f *QuoteFeed) Latest(client *http.Client) (float64, error) {
	if client == nil {
		client = new(http.Client)
	}
	var jobj any
	if err := jwget(client, f.URL, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", f.Name, err)
	}
	jval, err := jsonpath.Get(f.Path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", f.Name, f.Path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", f.Name, f.Path, "not a float", jval)
	}
	return val, nil
}

// Refresh fetches the latest value and pushes it into the market, relinking
// the quote's shared handle so that every dependent cash flow reprices on
// its next Amount call. It uses the daily-expiring cached client.
func (f *QuoteFeed) Refresh(m *Market) (float64, error) {
	val, err := f.Latest(daily())
	if err != nil {
		return math.NaN(), err
	}
	m.SetQuote(f.Name, val)
	return val, nil
}
