package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kyaoi/mdsheet/internal/app"
	"github.com/kyaoi/mdsheet/internal/config"
	"github.com/kyaoi/mdsheet/internal/logging"
)

var errUsage = errors.New("usage: mdsheet [path-to-markdown]")

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run returns every failure to main, which reports it on stderr. The
// standard logger may be discarded at that point.
func run(args []string) error {
	if len(args) > 1 {
		return errUsage
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cleanup, err := logging.Setup(cfg.Log.File)
	if err != nil {
		return err
	}
	defer cleanup()

	target := ""
	if len(args) == 1 {
		target = filepath.Clean(args[0])
	}
	return app.Run(cfg, target)
}
