package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/wuxler/svcname/pkg/cmdhelper"
	"github.com/wuxler/svcname/pkg/commands/internal/options"
	"github.com/wuxler/svcname/pkg/servicename"
)

// render writes the descriptions of names to w in the format selected by o.
func render(w io.Writer, o *options.Output, names []servicename.Name) error {
	descriptions := lo.Map(names, func(n servicename.Name, _ int) servicename.Description {
		return n.Describe()
	})
	switch strings.ToLower(o.Format) {
	case options.FormatJSON:
		data, err := cmdhelper.PrettifyJSON(descriptions)
		if err != nil {
			return err
		}
		cmdhelper.Fprintf(w, "%s", data)
		return nil
	case options.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(descriptions); err != nil {
			return err
		}
		return enc.Close()
	default:
		renderText(w, o.NoColor, descriptions)
		return nil
	}
}

func renderText(w io.Writer, noColor bool, descriptions []servicename.Description) {
	title := color.New(color.Bold)
	label := color.New(color.FgCyan)
	if noColor {
		title.DisableColor()
		label.DisableColor()
	}
	field := func(name string, value *string) {
		if value == nil {
			return
		}
		text := *value
		if text == "" {
			text = `""`
		}
		cmdhelper.Fprintf(w, "  %s %s", label.Sprint(fmt.Sprintf("%-13s", name+":")), text)
	}
	for _, d := range descriptions {
		cmdhelper.Fprintf(w, "%s", title.Sprint(d.Raw))
		field("kind", lo.ToPtr(d.Kind))
		field("components", lo.ToPtr(fmt.Sprintf("%q", d.Components)))
		field("scheme", d.Scheme)
		field("scheme path", d.SchemePath)
		if d.Scheme != nil && !d.Registered {
			field("registered", lo.ToPtr("false"))
		}
		field("interface", d.Interface)
		field("filter", d.Filter)
		field("service name", d.ServiceName)
		field("query", d.Query)
	}
}
