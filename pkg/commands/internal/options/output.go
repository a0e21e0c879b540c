package options

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// AllFormats lists the accepted output formats.
var AllFormats = []string{FormatText, FormatJSON, FormatYAML}

// NewOutput returns a *Output with default values.
func NewOutput() *Output {
	return &Output{Format: FormatText}
}

// Output controls how results are rendered.
type Output struct {
	Format  string `json:"format,omitempty" yaml:"format,omitempty"`
	NoColor bool   `json:"no_color,omitempty" yaml:"no_color,omitempty"`
}

// Flags returns the []cli.Flag related to current options.
func (o *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       fmt.Sprintf("output format, oneof [%s]", strings.Join(AllFormats, ", ")),
			Sources:     cli.EnvVars("SVCNAME_FORMAT"),
			Value:       o.Format,
			Destination: &o.Format,
			Validator:   ValidateFormat,
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "disable colored text output",
			Sources:     cli.EnvVars("NO_COLOR"),
			Destination: &o.NoColor,
		},
	}
}

// ValidateFormat checks the format is one of AllFormats.
func ValidateFormat(format string) error {
	if !lo.Contains(AllFormats, strings.ToLower(format)) {
		return fmt.Errorf("invalid format %q, allowed values are: [%s]", format, strings.Join(AllFormats, ", "))
	}
	return nil
}
