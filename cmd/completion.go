package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete answers a shell completion request and exits. It returns
// immediately when the process was not started by the shell completion.
func Complete(name string) {
	Completion().Complete(name)
}

// Completion describes the cb command line for shell completion.
func Completion() *complete.Command {
	typ := complete.PredictFunc(predictTypes)
	position := complete.PredictFunc(predictPositions)
	date := predict.Set{"0d", "-1d", "-1w", "-1m"}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"type":  typ,
				"price": predict.Something,
				"on":    date,
			}},
			"edit": {Flags: map[string]complete.Predictor{
				"id":    predict.Something,
				"n":     position,
				"type":  typ,
				"price": predict.Something,
				"on":    date,
			}},
			"delete": {Args: position},
			"move": {
				Flags: map[string]complete.Predictor{"to": position},
				Args:  position,
			},
			"list": {Flags: map[string]complete.Predictor{
				"p":      predict.Set{"day", "week", "month", "year"},
				"s":      date,
				"d":      date,
				"q":      predict.Something,
				"head":   predict.Something,
				"totals": predict.Nothing,
				"raw":    predict.Nothing,
			}},
			"format-ledger": {Flags: map[string]complete.Predictor{"o": predict.Files("*.jsonl")}},
			"topic": {
				Flags: map[string]complete.Predictor{"raw": predict.Nothing},
				Args:  complete.PredictFunc(predictTopics),
			},
			"completion": {},
			"help":       {},
			"flags":      {},
			"commands":   {},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
			"currency":    predict.Set{"KRW", "USD", "EUR", "JPY", "GBP"},
			"locale":      predict.Set{"en", "ko", "ja", "fr", "de"},
			"v":           predict.Nothing,
		},
	}
}

// predictTypes suggests the types already used in the ledger.
func predictTypes(prefix string) []string {
	txs, err := cashbook.NewFileBackend(*ledgerFile).Load()
	if err != nil {
		return nil
	}
	var types []string
	for _, tx := range txs {
		if !slices.Contains(types, tx.Type) {
			types = append(types, tx.Type)
		}
	}
	slices.Sort(types)
	return types
}

// predictPositions suggests the valid positions in the ledger.
func predictPositions(prefix string) []string {
	txs, err := cashbook.NewFileBackend(*ledgerFile).Load()
	if err != nil {
		return nil
	}
	positions := make([]string, len(txs))
	for i := range txs {
		positions[i] = strconv.Itoa(i)
	}
	return positions
}

func predictTopics(prefix string) []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return append(topics, "readme")
}

type completionCmd struct{}

func (*completionCmd) Name() string     { return "completion" }
func (*completionCmd) Synopsis() string { return "print the shell completion setup" }
func (*completionCmd) Usage() string {
	return `cb completion

  Prints the bash/zsh command that enables completion for cb. Add it to your
  shell profile:

$ eval "$(cb completion)"

  Alternatively run 'COMP_INSTALL=1 cb' to install it in your profile.
`
}

func (*completionCmd) SetFlags(f *flag.FlagSet) {}

func (*completionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	bin, err := os.Executable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error locating cb: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("complete -C %s %s\n", strconv.Quote(bin), filepath.Base(os.Args[0]))
	return subcommands.ExitSuccess
}
