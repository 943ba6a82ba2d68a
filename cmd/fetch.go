package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/equity"
	"github.com/google/subcommands"
)

type fetchCmd struct {
	name string
	url  string
	path string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch the latest value of a quote from a JSON endpoint" }
func (*fetchCmd) Usage() string {
	return `eqp fetch -q <quote> -url <url> -path <jsonpath>

  Fetches the latest value of a quote from a JSON HTTP endpoint, locates it
  with a jsonpath expression, updates the market file and saves it.
  Responses are cached for the day.

Usage Examples:
$ eqp fetch -q SPX.spot \
    -url 'https://example.com/api/intraday/SPX' \
    -path '$.series.intraday.data[-1:][1]'

`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "q", "", "Name of the quote in the market file")
	f.StringVar(&c.url, "url", "", "URL of the JSON endpoint")
	f.StringVar(&c.path, "path", "", "jsonpath expression locating the value in the response")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.url == "" || c.path == "" {
		fmt.Fprintln(os.Stderr, "Error: -q, -url and -path are required")
		return subcommands.ExitUsageError
	}

	market, err := DecodeMarketFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market: %v\n", err)
		return subcommands.ExitFailure
	}

	feed := &equity.QuoteFeed{Name: c.name, URL: c.url, Path: c.path}
	val, err := feed.Refresh(market)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching quote: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveMarketFile(market); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving market: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated %s to %g\n", c.name, val)
	return subcommands.ExitSuccess
}
