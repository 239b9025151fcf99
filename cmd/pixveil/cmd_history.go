package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"pixveil/pkg/history"
	"pixveil/pkg/veil"
)

var historyCommand = &cli.Command{
	Name:      "history",
	Usage:     "show recent runs from the journal",
	UsageText: "pixveil history [options]",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "last",
			Aliases: []string{"n"},
			Usage:   "number of runs to show",
			Value:   20,
		},
		&cli.StringFlag{
			Name:    "dbfile",
			Aliases: []string{"f"},
			Usage:   "path to the history database (defaults to the per-user journal)",
		},
	},
	Action: historyCmd,
}

func historyCmd(c *cli.Context) error {
	n := c.Int("last")
	if n <= 0 {
		return cli.Exit("Error: --last (-n) must be a positive number.", 1)
	}

	dbFile := c.String("dbfile")
	if dbFile == "" {
		cfg, err := veil.LoadConfig()
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error loading configuration: %v", err), 1)
		}
		dbFile = cfg.HistoryDB
	}
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		return cli.Exit(fmt.Sprintf("Error: no history database at %q", dbFile), 1)
	}

	store, err := history.Open(dbFile)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error opening history database: %v", err), 1)
	}
	defer store.Close()

	entries, err := store.LastN(n)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error retrieving runs: %v", err), 1)
	}
	if len(entries) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s  %-7s %-4s  %s -> %s  (%dx%d, digest %02x)\n",
			e.At.Format(time.RFC3339), e.Operation, e.Mode,
			e.Input, e.Output, e.Width, e.Height, e.Digest)
	}
	return nil
}
