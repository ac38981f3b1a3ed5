// Package cmd implements the cb command line application to record daily
// income and expenses.
package cmd

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/google/subcommands"
)

const (
	EnvLedgerFile = "CB_LEDGER_FILE"
	EnvCurrency   = "CB_CURRENCY"
	EnvLocale     = "CB_LOCALE"
	EnvVerbose    = "CB_VERBOSE"
	// EnvTestingNow freezes the clock, format "2006-01-02 15:04:05" in local time.
	EnvTestingNow = "CB_TESTING_NOW"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile      = flag.String("ledger-file", env(EnvLedgerFile, "transactions.jsonl"), "Path to the ledger file containing transactions (JSONL format)")
	defaultCurrency = flag.String("currency", env(EnvCurrency, "KRW"), "ISO 4217 currency used to display prices")
	locale          = flag.String("locale", env(EnvLocale, env("LANG", "en")), "Locale used to read and write prices")
	Verbose         = flag.Bool("v", envBool(EnvVerbose), "Log debug messages")
)

// Register registers the cb subcommands on c.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&addCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")
	c.Register(&moveCmd{}, "transactions")
	c.Register(&listCmd{}, "transactions")

	c.Register(&formatLedgerCmd{}, "ledger")

	c.Register(&topicCmd{}, "help")
	c.Register(&completionCmd{}, "help")
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

// now returns the current time, or the frozen time when EnvTestingNow is set.
func now() time.Time {
	if v := os.Getenv(EnvTestingNow); v != "" {
		if t, err := time.ParseInLocation(time.DateTime, v, time.Local); err == nil {
			return t
		}
	}
	return time.Now()
}
