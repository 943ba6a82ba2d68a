package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/equity/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion. Run
// `COMP_INSTALL=1 eqp` once to install it.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"price": {Flags: map[string]complete.Predictor{
			"i":            predict.Nothing,
			"n":            predict.Nothing,
			"s":            predict.Nothing,
			"e":            predict.Nothing,
			"p":            predict.Nothing,
			"c":            predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"},
			"quanto-curve": predict.Nothing,
			"equity-vol":   predict.Nothing,
			"fx-vol":       predict.Nothing,
			"correlation":  predict.Nothing,
		}},
		"fixing": {Flags: map[string]complete.Predictor{
			"i": predict.Nothing,
			"d": predict.Nothing,
			"v": predict.Nothing,
		}},
		"fetch": {Flags: map[string]complete.Predictor{
			"q":    predict.Nothing,
			"url":  predict.Nothing,
			"path": predict.Nothing,
		}},
		"topic":  {},
		"assist": {},
	},
	Flags: map[string]complete.Predictor{
		"market-file": predict.Files("*.json"),
	},
}

func main() {
	completion.Complete("eqp")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
