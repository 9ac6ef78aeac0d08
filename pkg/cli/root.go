/*
Copyright © 2025 The Anitya Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/pombredanne/anitya/pkg/logging"
)

const (
	name           = "anitya"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Usage:   "upstream version comparison and release monitoring",
		Description: `Compare upstream release versions across packaging ecosystems.

Each ecosystem orders versions by its own rules (RPM epochs and tildes,
Debian policy, SemVer, PEP 440, CPAN decimals). anitya parses versions
under the requested scheme, sorts them, and reports how the newest
release moved against a previously recorded one.`,
		Commands: []*cli.Command{
			checkCmd(),
			latestCmd(),
			compareCmd(),
			schemesCmd(),
		},
	}
}

// Run executes the CLI. It is called by main.main().
func Run() {
	logging.SetDefaultStructuredLogger(name, version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
