package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"pixveil/pkg/log"
)

var Version = "dev"

func newApp() *cli.App {
	return &cli.App{
		Name:    "pixveil",
		Usage:   "reversible key-based image obfuscation (pixel reversal and XOR)",
		Version: Version,
		Commands: []*cli.Command{
			encryptCommand,
			decryptCommand,
			historyCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}
