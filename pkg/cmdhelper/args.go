// Package cmdhelper provides helpers shared by the cli commands.
package cmdhelper

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/svcname/pkg/errdefs"
)

// ActionFunc is the *cli.Command Action function type.
type ActionFunc = cli.ActionFunc

// Chain runs handlers in order and stops at the first error.
func Chain(handlers ...ActionFunc) ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		for _, h := range handlers {
			if err := h(ctx, cmd); err != nil {
				return err
			}
		}
		return nil
	}
}

// ExactArgs returns an error if there are not exactly n args.
func ExactArgs(n int) ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		return checkArgs(cmd.Args().Len(), n)
	}
}

// NoArgs returns an error if any args are included.
func NoArgs() ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		if cmd.Args().Len() > 0 {
			return errdefs.Newf(errdefs.ErrInvalidParameter, "no args required for %q, received %q", cmd.FullName(), cmd.Args().First())
		}
		return nil
	}
}

// checkArgs validates that exactly want args were received.
func checkArgs(got, want int) error {
	if got != want {
		return errdefs.Newf(errdefs.ErrInvalidParameter, "accepts %d arg(s), received %d", want, got)
	}
	return nil
}
