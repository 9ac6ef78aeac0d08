/*
Copyright © 2025 The Anitya Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/pombredanne/anitya/pkg/scheme"
)

// compareReport is the serialized result of a compare invocation.
type compareReport struct {
	Scheme         string `json:"scheme" yaml:"scheme"`
	SchemeAdvisory string `json:"schemeAdvisory,omitempty" yaml:"schemeAdvisory,omitempty"`
	Left           string `json:"left" yaml:"left"`
	Right          string `json:"right" yaml:"right"`
	Result         int    `json:"result" yaml:"result"`
	Relation       string `json:"relation" yaml:"relation"`
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Compare two versions under a scheme",
		ArgsUsage: "LEFT RIGHT",
		Description: `Parse both versions under the requested scheme and report their
order. Result is -1, 0, or 1 for left older than, equal to, or newer
than right.

# Examples

  anitya compare --scheme rpm 1.0~rc1 1.0
  anitya compare --scheme Debian 1:1.0 2.0
  anitya compare --scheme 'Python (PEP 440)' 1.0.dev3 1.0a1`,
		Flags: []cli.Flag{
			schemeFlag,
			&cli.StringFlag{
				Name:  "prefix",
				Usage: "prefix stripped from each version before parsing (e.g. v, release-)",
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

			args := cmd.Args().Slice()
			if len(args) != 2 {
				return fmt.Errorf("expected exactly two versions, got %d", len(args))
			}

			strategy, known := scheme.Default().Resolve(cmd.String("scheme"))
			opts := scheme.Options{Prefix: cmd.String("prefix")}

			left, err := strategy.Parse(args[0], opts)
			if err != nil {
				return err
			}
			right, err := strategy.Parse(args[1], opts)
			if err != nil {
				return err
			}

			result, err := strategy.Compare(left, right)
			if err != nil {
				return err
			}

			rep := compareReport{
				Scheme:   strategy.Name(),
				Left:     args[0],
				Right:    args[1],
				Result:   result,
				Relation: relation(result),
			}
			if !known && cmd.String("scheme") != "" {
				rep.SchemeAdvisory = fmt.Sprintf("unknown scheme %q, generic applied", cmd.String("scheme"))
			}

			return writer.Serialize(ctx, rep)
		},
	}
}

func relation(result int) string {
	switch {
	case result < 0:
		return "older"
	case result > 0:
		return "newer"
	default:
		return "equal"
	}
}
