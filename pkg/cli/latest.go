/*
Copyright © 2025 The Anitya Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/pombredanne/anitya/pkg/release"
	"github.com/pombredanne/anitya/pkg/scheme"
	"github.com/pombredanne/anitya/pkg/serializer"
)

// latestReport is the serialized result of a latest invocation.
type latestReport struct {
	Scheme         string          `json:"scheme" yaml:"scheme"`
	SchemeAdvisory string          `json:"schemeAdvisory,omitempty" yaml:"schemeAdvisory,omitempty"`
	Latest         string          `json:"latest,omitempty" yaml:"latest,omitempty"`
	History        []string        `json:"history" yaml:"history"`
	Excluded       []string        `json:"excluded,omitempty" yaml:"excluded,omitempty"`
	Failures       []failureReport `json:"failures,omitempty" yaml:"failures,omitempty"`
}

type failureReport struct {
	Raw    string `json:"raw" yaml:"raw"`
	Reason string `json:"reason" yaml:"reason"`
}

func latestCmd() *cli.Command {
	return &cli.Command{
		Name:      "latest",
		Usage:     "Sort versions under a scheme and report the newest",
		ArgsUsage: "VERSION [VERSION...]",
		Description: `Parse the given versions under the requested scheme, sort them
newest first, and report the newest selectable release.

Versions can be passed as arguments or read from a file or URL with
--source (plain lines, a JSON array, or a YAML list).

# Examples

  anitya latest --scheme rpm 1.0 1.0~rc1 2:1.0
  anitya latest --scheme semver --exclude '-(alpha|beta|rc)' --source versions.txt
  anitya latest --scheme Debian --prefix v --source https://example.com/tags.json`,
		Flags: []cli.Flag{
			schemeFlag,
			&cli.StringFlag{
				Name:  "source",
				Usage: "read versions from a file path or http(s) URL instead of arguments",
			},
			&cli.StringFlag{
				Name:  "prefix",
				Usage: "prefix stripped from each version before parsing (e.g. v, release-)",
			},
			&cli.StringFlag{
				Name:  "exclude",
				Usage: "regular expression; matching versions stay in history but are never newest",
			},
			&cli.BoolFlag{
				Name:  "skip-prereleases",
				Usage: "do not select pre-release versions as newest",
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

			versions := cmd.Args().Slice()
			if source := cmd.String("source"); source != "" {
				if len(versions) > 0 {
					return fmt.Errorf("pass versions as arguments or via --source, not both")
				}
				versions, err = readVersionSource(ctx, source)
				if err != nil {
					return err
				}
			}
			if len(versions) == 0 {
				return fmt.Errorf("no versions given, pass them as arguments or via --source")
			}

			reducer := release.NewReducer(scheme.Default())
			red, err := reducer.Reduce(release.Request{
				Versions:        versions,
				Scheme:          cmd.String("scheme"),
				Prefix:          cmd.String("prefix"),
				ExcludePattern:  cmd.String("exclude"),
				SkipPrereleases: cmd.Bool("skip-prereleases"),
			})
			if err != nil {
				return err
			}

			return writer.Serialize(ctx, buildLatestReport(cmd.String("scheme"), red))
		},
	}
}

func buildLatestReport(requested string, red *release.Reduction) latestReport {
	rep := latestReport{
		Scheme:  red.Scheme,
		History: []string{},
	}
	if !red.KnownScheme && requested != "" {
		rep.SchemeAdvisory = fmt.Sprintf("unknown scheme %q, generic applied", requested)
	}
	if red.Newest != nil {
		rep.Latest = red.Newest.Raw()
	}
	for _, v := range red.History {
		rep.History = append(rep.History, v.Raw())
		if v.Excluded() {
			rep.Excluded = append(rep.Excluded, v.Raw())
		}
	}
	for _, f := range red.Failures {
		rep.Failures = append(rep.Failures, failureReport{Raw: f.Raw, Reason: f.Reason})
	}
	return rep
}

// readVersionSource loads a raw version list from a local file or an
// http(s) URL.
func readVersionSource(ctx context.Context, source string) ([]string, error) {
	if isURL(source) {
		return serializer.NewHTTPReader().ReadVersionList(ctx, source)
	}
	return serializer.ReadVersionListFile(source)
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
