package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/utfq/agmd/internal/cli"
	"github.com/utfq/agmd/internal/config"
	"github.com/utfq/agmd/internal/db"
	"github.com/utfq/agmd/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	app := &cli.App{
		IgnoreName: cfg.IgnoreName,
		Out:        os.Stdout,
		Hyperlinks: tty && !cfg.NoColor,
		Plain:      cfg.NoColor,
	}

	// The cache is an optimization; a broken cache database downgrades the
	// run instead of failing it.
	if database, err := db.OpenDB(cfg.CachePath); err != nil {
		fmt.Fprintf(os.Stderr, "warning: scan cache disabled: %v\n", err)
	} else {
		defer database.Close()
		app.Cache = repository.NewSQLiteTaskCacheRepo(database)
	}

	return cli.NewRootCmd(app).Execute()
}
