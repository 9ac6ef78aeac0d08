/*
Copyright © 2025 The Anitya Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/pombredanne/anitya/pkg/checker"
	"github.com/pombredanne/anitya/pkg/config"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Check every configured project for new releases",
		Description: `Run a one-shot check over the projects in the configuration file:
fetch each project's version list, sort it under the project's scheme,
and compare the newest release against the recorded previous version.

The configuration file is resolved from --config, the ANITYA_CONFIG
environment variable, or projects.yaml in the working directory.

# Examples

  anitya check
  anitya check --config projects.yaml --workers 8 --format yaml
  anitya check --output report.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "project configuration file path",
				Sources: cli.EnvVars("ANITYA_CONFIG"),
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "number of concurrent project checks (default from config or 4)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			writer, err := newReportWriter(cmd)
			if err != nil {
				return err
			}
			defer writer.Close()

			cfg, err := config.Load(config.ResolvePath(cmd.String("config")))
			if err != nil {
				return err
			}

			c := &checker.Checker{
				Workers:    int(cmd.Int("workers")),
				Serializer: writer,
			}
			report, err := c.Run(ctx, cfg)
			if err != nil {
				return err
			}

			if report.Errors > 0 {
				return fmt.Errorf("%d of %d project checks failed", report.Errors, len(report.Projects))
			}
			return nil
		},
	}
}
