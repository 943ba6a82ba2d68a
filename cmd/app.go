// Package cmd implements the CLI application to value equity cash flows.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/equity"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&priceCmd{}, "valuation")

	c.Register(&fixingCmd{}, "market data")
	c.Register(&fetchCmd{}, "market data")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&AssistCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var marketFile = flag.String("market-file", "market.json", "Path to the market data file (JSON format)")

// DecodeMarketFile decodes the market from the app default market file.
func DecodeMarketFile() (*equity.Market, error) {
	f, err := os.Open(*marketFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("market file %q does not exist", *marketFile)
		}
		return nil, fmt.Errorf("could not open market file %q: %w", *marketFile, err)
	}
	defer f.Close()

	m, err := equity.DecodeMarket(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode market file %q: %w", *marketFile, err)
	}
	return m, nil
}

// SaveMarketFile writes the market back into the app default market file.
func SaveMarketFile(m *equity.Market) error {
	f, err := os.Create(*marketFile)
	if err != nil {
		return fmt.Errorf("could not create market file %q: %w", *marketFile, err)
	}
	defer f.Close()

	if err := equity.EncodeMarket(f, m); err != nil {
		return fmt.Errorf("could not write market file %q: %w", *marketFile, err)
	}
	return nil
}
