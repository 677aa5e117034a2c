// Package info implements the "info" command, which reports the current
// version and, on request, the repository tags.
package info

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/indaco/versionator/internal/clix"
	"github.com/indaco/versionator/internal/config"
	"github.com/indaco/versionator/internal/operations"
	"github.com/indaco/versionator/internal/printer"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Report is the structured form of an info result.
type Report struct {
	File      string   `json:"file" yaml:"file" toml:"file"`
	Format    string   `json:"format" yaml:"format" toml:"format"`
	Version   string   `json:"version" yaml:"version" toml:"version"`
	Major     int      `json:"major" yaml:"major" toml:"major"`
	Minor     int      `json:"minor" yaml:"minor" toml:"minor"`
	Patch     int      `json:"patch" yaml:"patch" toml:"patch"`
	Tag       string   `json:"tag" yaml:"tag" toml:"tag"`
	Tagged    *bool    `json:"tagged,omitempty" yaml:"tagged,omitempty" toml:"tagged,omitempty"`
	LatestTag string   `json:"latest_tag,omitempty" yaml:"latest_tag,omitempty" toml:"latest_tag,omitempty"`
	Tags      []string `json:"tags,omitempty" yaml:"tags,omitempty" toml:"tags,omitempty"`
}

// NewReport converts an info result. Tag fields are only filled when tags
// were requested.
func NewReport(r *operations.InfoResult, withTags bool) Report {
	rep := Report{
		File:    r.File.Path,
		Format:  string(r.File.Format),
		Version: r.Version.String(),
		Major:   r.Version.Major,
		Minor:   r.Version.Minor,
		Patch:   r.Version.Patch,
		Tag:     r.TagName,
	}
	if withTags {
		tagged := r.Tagged
		rep.Tagged = &tagged
		rep.LatestTag = r.LatestTag
		rep.Tags = r.Tags
	}
	return rep
}

// Run returns the "info" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "info",
		Aliases:   []string{"show"},
		Usage:     "Show the current version",
		UsageText: "versionator info [--tags] [--raw | --components] [--format text|json|yaml|toml]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "tags",
				Usage: "Also list the repository tags",
			},
			&cli.BoolFlag{
				Name:    "raw",
				Aliases: []string{"r"},
				Usage:   "Print only the version string",
			},
			&cli.BoolFlag{
				Name:    "components",
				Aliases: []string{"c"},
				Usage:   "Print major, minor and patch on separate lines",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, yaml or toml",
				Value:   FormatText,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInfoCmd(ctx, cmd, cfg)
		},
	}
}

func runInfoCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	format := cmd.String("format")
	switch format {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
	default:
		return fmt.Errorf("unsupported format %q (expected text, json, yaml or toml)", format)
	}

	execCtx, err := clix.GetExecutionContext(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	withTags := cmd.Bool("tags")
	result, err := execCtx.Engine.Info(ctx, execCtx.Path, operations.InfoOptions{WithTags: withTags})
	if err != nil {
		return err
	}
	clix.WarnTags(result.TagsErr)

	if format != FormatText {
		data, err := Marshal(NewReport(result, withTags), format)
		if err != nil {
			return err
		}
		printer.Println(string(data))
		return nil
	}

	switch {
	case cmd.Bool("raw"):
		printer.Println(result.Version.String())
	case cmd.Bool("components"):
		for _, c := range result.Version.Components() {
			printer.Println(strconv.Itoa(c))
		}
	default:
		printer.PrintKeyValue("file", result.File.Path)
		printer.PrintKeyValue("version", printer.Bold(result.Version.String()))
	}

	if withTags {
		printTags(result)
	}
	return nil
}

func printTags(r *operations.InfoResult) {
	status := printer.Warning("not tagged")
	if r.Tagged {
		status = printer.Success("tagged")
	}
	printer.PrintKeyValue("tag", fmt.Sprintf("%s (%s)", r.TagName, status))
	if r.LatestTag != "" {
		printer.PrintKeyValue("latest", r.LatestTag)
	}
	clix.PrintTagList(r.Tags)
}

// Marshal renders rep in the given structured format, without a trailing newline.
func Marshal(rep Report, format string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(rep, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(rep)
	case FormatTOML:
		data, err = toml.Marshal(rep)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", format, err)
	}
	for len(data) > 0 && data[len(data)-1] == '\n' {
		data = data[:len(data)-1]
	}
	return data, nil
}
