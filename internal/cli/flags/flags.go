// Package flags defines flag sets shared by several commands.
package flags

import "github.com/urfave/cli/v3"

// ReleaseOptions holds the values of ReleaseFlags.
type ReleaseOptions struct {
	DryRun  bool
	Message string
	Commit  bool
	Push    bool
	Yes     bool
}

// ReleaseFlags returns the flags controlling file writes and git side effects.
// withTag adds the --tag toggle used by commands that only tag on request.
func ReleaseFlags(withTag bool) []cli.Flag {
	fs := []cli.Flag{
		&cli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"d"},
			Usage:   "Show what would change without writing, committing or tagging",
		},
		&cli.StringFlag{
			Name:    "message",
			Aliases: []string{"m"},
			Usage:   "Create an annotated tag with this message",
		},
		&cli.BoolFlag{
			Name:  "commit",
			Usage: "Commit the version file before tagging",
		},
		&cli.BoolFlag{
			Name:  "push",
			Usage: "Push the created tag to origin",
		},
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "Do not ask for confirmation",
		},
	}
	if withTag {
		fs = append(fs, &cli.BoolFlag{
			Name:    "tag",
			Aliases: []string{"t"},
			Usage:   "Create a git tag for the new version",
		})
	}
	return fs
}

// GetReleaseOptions reads the ReleaseFlags values from cmd.
func GetReleaseOptions(cmd *cli.Command) ReleaseOptions {
	return ReleaseOptions{
		DryRun:  cmd.Bool("dry-run"),
		Message: cmd.String("message"),
		Commit:  cmd.Bool("commit"),
		Push:    cmd.Bool("push"),
		Yes:     cmd.Bool("yes"),
	}
}
