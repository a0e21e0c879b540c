package commands

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/svcname/pkg/commands/internal/options"
	"github.com/wuxler/svcname/pkg/errdefs"
	"github.com/wuxler/svcname/pkg/servicename"
	"github.com/wuxler/svcname/pkg/xlog"
)

// NewParseCommand returns a parse command with default values.
func NewParseCommand() *ParseCommand {
	return &ParseCommand{
		Common: options.NewCommon(),
		Output: options.NewOutput(),
		Fs:     afero.NewOsFs(),
	}
}

// ParseCommand parses service names given as arguments or listed in a file.
type ParseCommand struct {
	Common *options.Common
	Output *options.Output
	// File lists one name per line, blank lines and lines starting with
	// '#' are skipped.
	File string
	Fs   afero.Fs
}

// ToCLI transforms to a *cli.Command.
func (c *ParseCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:  "parse",
		Usage: "Split service names into their components",
		UsageText: `svcname parse [OPTIONS] [NAME...]

# Parse a filtered service name
$ svcname parse 'osgi:service/com.foo.Bar/(vendor=Acme)'

# Parse every name listed in a file as json
$ svcname parse --file names.txt --format json
`,
		ArgsUsage: "[NAME...]",
		Flags:     c.Flags(),
		Action:    c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *ParseCommand) Flags() []cli.Flag {
	flags := []cli.Flag{}
	flags = append(flags, c.Common.Flags()...)
	flags = append(flags, c.Output.Flags()...)
	flags = append(flags, &cli.StringFlag{
		Name:        "file",
		Usage:       "read names from `PATH`, one per line",
		Sources:     cli.EnvVars("SVCNAME_FILE"),
		Destination: &c.File,
	})
	return flags
}

// Run is the main function for the current command.
func (c *ParseCommand) Run(ctx context.Context, cmd *cli.Command) error {
	ctx = c.Common.Apply(ctx)
	raws, err := c.collect(cmd.Args().Slice())
	if err != nil {
		return err
	}
	names, err := c.parse(ctx, raws)
	if err != nil {
		return err
	}
	return render(cmd.Writer, c.Output, names)
}

func (c *ParseCommand) parse(ctx context.Context, raws []string) ([]servicename.Name, error) {
	parser, err := servicename.NewParser()
	if err != nil {
		return nil, err
	}
	defer parser.Close()

	return lo.Map(raws, func(raw string, _ int) servicename.Name {
		return parser.Parse(ctx, raw)
	}), nil
}

// collect returns the names from args followed by the names in File.
func (c *ParseCommand) collect(args []string) ([]string, error) {
	raws := append([]string{}, args...)
	if c.File != "" {
		content, err := afero.ReadFile(c.Fs, c.File)
		if err != nil {
			return nil, errdefs.NewE(errdefs.ErrSystem, err)
		}
		lines := lo.Filter(strings.Split(string(content), "\n"), func(line string, _ int) bool {
			line = strings.TrimSpace(line)
			return line != "" && !strings.HasPrefix(line, "#")
		})
		raws = append(raws, lo.Map(lines, func(line string, _ int) string {
			return strings.TrimSpace(line)
		})...)
		xlog.Debug("read names from file", "path", c.File, "count", len(lines))
	}
	if len(raws) == 0 {
		return nil, errdefs.Newf(errdefs.ErrInvalidParameter, "no name given, pass names as arguments or with --file")
	}
	return raws, nil
}
