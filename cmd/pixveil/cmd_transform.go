package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"pixveil/pkg/history"
	"pixveil/pkg/imgio"
	"pixveil/pkg/log"
	"pixveil/pkg/transform"
	"pixveil/pkg/veil"
)

// encrypt and decrypt share flags and action; only the direction differs.

func transformFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "key",
			Usage: "numeric key (0-255) used for the XOR step",
			Value: 123,
		},
		&cli.StringFlag{
			Name:  "mode",
			Usage: "which operations to apply: swap, math or both",
			Value: "both",
		},
		&cli.StringFlag{
			Name:  "history-db",
			Usage: "path to the run journal database",
		},
		&cli.BoolFlag{
			Name:  "no-history",
			Usage: "do not journal this run",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "emit debug logging",
		},
	}
}

var (
	encryptCommand = &cli.Command{
		Name:        "encrypt",
		Usage:       "obfuscate an image",
		UsageText:   "pixveil encrypt [options] <input> <output>",
		Description: `applies the selected pixel transforms to the input image`,
		Flags:       transformFlags(),
		Action: func(c *cli.Context) error {
			return runTransform(c, veil.OpEncrypt)
		},
	}

	decryptCommand = &cli.Command{
		Name:        "decrypt",
		Usage:       "restore an obfuscated image",
		UsageText:   "pixveil decrypt [options] <input> <output>",
		Description: `inverts the transforms applied by encrypt (same key, same mode)`,
		Flags:       transformFlags(),
		Action: func(c *cli.Context) error {
			return runTransform(c, veil.OpDecrypt)
		},
	}
)

func runTransform(c *cli.Context, op veil.Operation) error {
	if c.NArg() != 2 {
		return cli.Exit(fmt.Sprintf("Error: expected <input> and <output> arguments, got %d", c.NArg()), 1)
	}
	input := c.Args().Get(0)
	output := c.Args().Get(1)

	cfg, err := veil.LoadConfig()
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error loading configuration: %v", err), 1)
	}
	// Flags win over config file and environment.
	if c.IsSet("key") {
		cfg.Key = c.Int("key")
	}
	if c.IsSet("mode") {
		cfg.Mode = c.String("mode")
	}
	if c.IsSet("history-db") {
		cfg.HistoryDB = c.String("history-db")
	}
	if c.IsSet("no-history") {
		cfg.NoHistory = true
	}
	if c.IsSet("verbose") {
		cfg.Verbose = true
	}
	if cfg.Verbose {
		log.SetVerbose()
	}

	// Validate everything before touching any file.
	if cfg.Key < 0 || cfg.Key > 255 {
		return cli.Exit("Error: key must be an integer between 0 and 255", 1)
	}
	mode, err := transform.ParseMode(cfg.Mode)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	// A missing input is a graceful no-op, not a crash.
	fi, err := os.Stat(input)
	if err != nil || !fi.Mode().IsRegular() {
		fmt.Printf("Error: input file %q does not exist.\n", input)
		return nil
	}

	var store *history.Store
	if !cfg.NoHistory {
		store, err = history.Open(cfg.HistoryDB)
		if err != nil {
			log.Warn().Err(err).Msg("run journal unavailable")
			store = nil
		} else {
			defer store.Close()
		}
	}

	engine := veil.NewEngine(imgio.NewCodec(), store)
	res, err := engine.Run(veil.Request{
		Operation: op,
		Input:     input,
		Output:    output,
		Key:       uint8(cfg.Key),
		Mode:      mode,
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	log.Debug().
		Str("operation", op.String()).
		Str("mode", mode.String()).
		Int("width", res.Width).
		Int("height", res.Height).
		Uint8("digest", res.Digest).
		Msg("run complete")
	fmt.Printf("%s image saved to: %s\n", op.Past(), res.Output)
	return nil
}
