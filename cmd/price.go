package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/equity"
	"github.com/etnz/equity/date"
	"github.com/etnz/equity/renderer"
	"github.com/google/subcommands"
)

// priceCmd holds the flags for the 'price' subcommand.
type priceCmd struct {
	index    string
	notional float64
	start    string
	end      string
	payment  string
	currency string

	quantoCurve string
	equityVol   string
	fxVol       string
	correlation string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "value an equity cash flow against the market file" }
func (*priceCmd) Usage() string {
	return `eqp price -i <index> -n <notional> -s <start> -e <end> [-p <payment>] [-c <currency>] [quanto flags]

  Values one equity cash flow: notional times the index performance between
  the start and the end date. With the quanto flags the index forward is
  drift-adjusted for the currency mismatch.

Usage Examples:
# Plain performance in EUR.
$ eqp price -i SPX -n 1000000 -s 2023-01-05 -e 2023-04-05

# Quanto-adjusted performance.
$ eqp price -i SPX -n 1000000 -s 2023-01-05 -e 2023-04-05 \
    -quanto-curve eur -equity-vol SPX -fx-vol USDEUR -correlation SPX.USDEUR

`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.index, "i", "", "Name of the equity index in the market file")
	f.Float64Var(&c.notional, "n", 1_000_000, "Notional of the cash flow")
	f.StringVar(&c.start, "s", "", "Start date of the performance period. See the user manual for supported date formats.")
	f.StringVar(&c.end, "e", date.Today().String(), "End date of the performance period")
	f.StringVar(&c.payment, "p", "", "Payment date, defaults to the end date")
	f.StringVar(&c.currency, "c", "EUR", "Reporting currency for the payoff")

	f.StringVar(&c.quantoCurve, "quanto-curve", "", "Name of the quanto currency curve in the market file")
	f.StringVar(&c.equityVol, "equity-vol", "", "Name of the equity volatility surface in the market file")
	f.StringVar(&c.fxVol, "fx-vol", "", "Name of the FX volatility surface in the market file")
	f.StringVar(&c.correlation, "correlation", "", "Name of the equity/FX correlation quote in the market file")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.index == "" || c.start == "" {
		fmt.Fprintln(os.Stderr, "Error: -i and -s are required")
		return subcommands.ExitUsageError
	}
	start, err := date.Parse(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	end, err := date.Parse(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}
	payment := end
	if c.payment != "" {
		if payment, err = date.Parse(c.payment); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing payment date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	market, err := DecodeMarketFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market: %v\n", err)
		return subcommands.ExitFailure
	}

	index, err := market.Index(c.index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building index: %v\n", err)
		return subcommands.ExitFailure
	}

	cf := equity.NewCashFlow(c.notional, index, start, end, payment)
	if c.quantoCurve != "" {
		pricer, err := c.newQuantoPricer(market)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building quanto pricer: %v\n", err)
			return subcommands.ExitFailure
		}
		cf.SetPricer(pricer)
	}

	v, err := equity.NewValuation(cf, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuing cash flow: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ValuationMarkdown(v))

	return subcommands.ExitSuccess
}

// newQuantoPricer resolves the quanto market data names into shared handles.
func (c *priceCmd) newQuantoPricer(market *equity.Market) (*equity.QuantoPricer, error) {
	quanto, err := market.Curve(c.quantoCurve)
	if err != nil {
		return nil, err
	}
	eqVol, err := market.Vol(c.equityVol)
	if err != nil {
		return nil, err
	}
	fxVol, err := market.Vol(c.fxVol)
	if err != nil {
		return nil, err
	}
	rho, err := market.Quote(c.correlation)
	if err != nil {
		return nil, err
	}
	return equity.NewQuantoPricer(quanto, eqVol, fxVol, rho), nil
}
