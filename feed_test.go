package equity

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/etnz/equity/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuoteServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestQuoteFeedLatest(t *testing.T) {
	srv := newQuoteServer(t, `{"quote":{"last":123.45},"history":[42.5]}`)

	tests := []struct {
		name string
		path string
		want float64
	}{
		{"scalar", "$.quote.last", 123.45},
		// some providers answer with a one-element list
		{"list", "$.history[*]", 42.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed := &QuoteFeed{Name: "XEQ.spot", URL: srv.URL, Path: tt.path}
			got, err := feed.Latest(srv.Client())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuoteFeedLatestErrors(t *testing.T) {
	srv := newQuoteServer(t, `{"quote":{"last":"not a number"}}`)

	tests := []struct {
		name string
		path string
	}{
		{"bad path", "$.quote..oops["},
		{"missing value", "$.quote.bid"},
		{"not a float", "$.quote.last"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed := &QuoteFeed{Name: "XEQ.spot", URL: srv.URL, Path: tt.path}
			_, err := feed.Latest(srv.Client())
			assert.Error(t, err)
		})
	}
}

func TestQuoteFeedRefresh(t *testing.T) {
	srv := newQuoteServer(t, `{"quote":{"last":8710.0}}`)

	m := NewMarket(date.New(2023, time.January, 27), date.Act365Fixed)
	m.SetQuote("XEQ.spot", 8700)
	h, err := m.Quote("XEQ.spot")
	require.NoError(t, err)

	feed := &QuoteFeed{Name: "XEQ.spot", URL: srv.URL, Path: "$.quote.last"}
	val, err := feed.Refresh(m)
	require.NoError(t, err)

	assert.Equal(t, 8710.0, val)
	assert.Equal(t, 8710.0, h.Target().Value(), "the market's shared handle must see the new value")
}
