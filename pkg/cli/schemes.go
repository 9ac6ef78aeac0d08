/*
Copyright © 2025 The Anitya Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pombredanne/anitya/pkg/scheme"
)

// schemeEntry is one row of the schemes listing.
type schemeEntry struct {
	Scheme  string `json:"scheme" yaml:"scheme"`
	Display string `json:"display" yaml:"display"`
}

func schemesCmd() *cli.Command {
	return &cli.Command{
		Name:  "schemes",
		Usage: "List the supported versioning schemes",
		Description: `List every versioning scheme the comparison engine knows about.
Scheme identifiers are matched case-sensitively; anything else falls
back to the generic scheme.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			writer, err := newReportWriter(cmd)
			if err != nil {
				return err
			}
			defer writer.Close()

			return writer.Serialize(ctx, listSchemes())
		},
	}
}

func listSchemes() []schemeEntry {
	caser := cases.Title(language.English, cases.NoLower)
	names := scheme.Default().Names()
	entries := make([]schemeEntry, 0, len(names))
	for _, n := range names {
		entries = append(entries, schemeEntry{
			Scheme:  n,
			Display: caser.String(n),
		})
	}
	return entries
}
