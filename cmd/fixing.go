package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/equity/date"
	"github.com/google/subcommands"
)

type fixingCmd struct {
	index string
	date  string
	level float64
}

func (*fixingCmd) Name() string     { return "fixing" }
func (*fixingCmd) Synopsis() string { return "record a historical index fixing in the market file" }
func (*fixingCmd) Usage() string {
	return `eqp fixing -i <index> -d <date> -v <level>

  Records the closing level of an index on a given date and saves the
  market file. Recording twice on the same date overwrites the level.

Usage Examples:
$ eqp fixing -i SPX -d 2023-01-05 -v 9010.0

`
}

func (c *fixingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.index, "i", "", "Name of the equity index")
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the fixing")
	f.Float64Var(&c.level, "v", 0, "Level of the index on that date")
}

func (c *fixingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.index == "" || c.level == 0 {
		fmt.Fprintln(os.Stderr, "Error: -i and -v are required")
		return subcommands.ExitUsageError
	}
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	market, err := DecodeMarketFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market: %v\n", err)
		return subcommands.ExitFailure
	}

	market.AddFixing(c.index, on, c.level)

	if err := SaveMarketFile(market); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving market: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s fixing %g on %s\n", c.index, c.level, on)
	return subcommands.ExitSuccess
}
