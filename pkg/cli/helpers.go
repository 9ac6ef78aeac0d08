/*
Copyright © 2025 The Anitya Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/pombredanne/anitya/pkg/serializer"
)

// Flags shared by every command that produces a report.
var (
	outputFlag = &cli.StringFlag{
		Name:  "output",
		Usage: "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: fmt.Sprintf("output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
		Value: string(serializer.FormatJSON),
	}

	schemeFlag = &cli.StringFlag{
		Name:    "scheme",
		Usage:   "versioning scheme identifier (unknown values fall back to generic)",
		Sources: cli.EnvVars("ANITYA_SCHEME"),
	}
)

// parseOutputFormat reads and validates the format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported formats: %s",
			cmd.String("format"), strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// newReportWriter builds the serializer for the shared output/format
// flags. The caller owns Close.
func newReportWriter(cmd *cli.Command) (*serializer.Writer, error) {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}
	return serializer.NewFileWriterOrStdout(outFormat, cmd.String("output")), nil
}
