package commands

import (
	"context"

	"github.com/spf13/cast"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/svcname/pkg/cmdhelper"
	"github.com/wuxler/svcname/pkg/commands/internal/options"
	"github.com/wuxler/svcname/pkg/errdefs"
	"github.com/wuxler/svcname/pkg/servicename"
	"github.com/wuxler/svcname/pkg/xlog"
)

// NewGetCommand returns a get command with default values.
func NewGetCommand() *GetCommand {
	return &GetCommand{
		Common: options.NewCommon(),
	}
}

// GetCommand prints a single component of a service name.
type GetCommand struct {
	Common *options.Common
}

// ToCLI transforms to a *cli.Command.
func (c *GetCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Print the component at INDEX of a service name",
		UsageText: `svcname get [OPTIONS] NAME INDEX

# Print the interface of a service name
$ svcname get osgi:service/com.foo.Bar 1
`,
		ArgsUsage: "NAME INDEX",
		Flags:     c.Common.Flags(),
		Action:    cmdhelper.Chain(cmdhelper.ExactArgs(2), c.Run),
	}
}

// Run is the main function for the current command.
func (c *GetCommand) Run(ctx context.Context, cmd *cli.Command) error {
	ctx = c.Common.Apply(ctx)
	component, err := c.get(ctx, cmd.Args().Get(0), cmd.Args().Get(1))
	if err != nil {
		return err
	}
	cmdhelper.Fprintf(cmd.Writer, "%s", component)
	return nil
}

func (c *GetCommand) get(ctx context.Context, raw string, index string) (string, error) {
	i, err := cast.ToIntE(index)
	if err != nil {
		return "", errdefs.Newf(errdefs.ErrInvalidParameter, "invalid index %q: %v", index, err)
	}
	n := servicename.Parse(raw)
	xlog.C(ctx).DebugContext(ctx, "get component", "name", raw, "index", i, "len", n.Len())
	return n.Get(i)
}
