// Package options defines the flag groups shared by the commands.
package options

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/svcname/pkg/xlog"
)

// NewCommon returns a *Common with default values.
func NewCommon() *Common {
	return &Common{}
}

// Common are options that are common to all commands.
type Common struct {
	Debug   bool   `json:"debug,omitempty" yaml:"debug,omitempty"`
	LogFile string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
}

// Flags returns the []cli.Flag related to current options.
func (o *Common) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "debug",
			Aliases:     []string{"d"},
			Sources:     cli.EnvVars("SVCNAME_DEBUG"),
			Usage:       "enable debug logging",
			Destination: &o.Debug,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Sources:     cli.EnvVars("SVCNAME_LOG_FILE"),
			Usage:       "also write json logs to a rotating file",
			Destination: &o.LogFile,
		},
	}
}

// LogConfig returns the logging configuration selected by the options.
func (o *Common) LogConfig() xlog.Config {
	c := xlog.NewConfig()
	if o.Debug {
		c.Level = xlog.LevelDebug
	}
	c.Path = o.LogFile
	return c
}

// Apply installs the configured logger as default and returns a context
// carrying it.
func (o *Common) Apply(ctx context.Context) context.Context {
	logger := xlog.New(o.LogConfig())
	xlog.SetDefault(logger)
	return xlog.NewContext(ctx, logger)
}
