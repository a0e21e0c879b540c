package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wuxler/svcname/pkg/commands/internal/options"
	"github.com/wuxler/svcname/pkg/errdefs"
	"github.com/wuxler/svcname/pkg/servicename"
	"github.com/wuxler/svcname/pkg/xlog"
)

func TestParseCommand_collect(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := strings.Join([]string{
		"# service names",
		"osgi:service/com.foo.Bar",
		"",
		"  osgi:servicelist/com.foo.Bar/a/b  ",
		"aries:services/jdbc/(db=main)",
	}, "\n")
	require.NoError(t, afero.WriteFile(fs, "names.txt", []byte(content), 0o644))

	c := NewParseCommand()
	c.Fs = fs
	c.File = "names.txt"

	got, err := c.collect([]string{"noscheme"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"noscheme",
		"osgi:service/com.foo.Bar",
		"osgi:servicelist/com.foo.Bar/a/b",
		"aries:services/jdbc/(db=main)",
	}, got)
}

func TestParseCommand_collectErrors(t *testing.T) {
	c := NewParseCommand()
	c.Fs = afero.NewMemMapFs()

	_, err := c.collect(nil)
	assert.ErrorIs(t, err, errdefs.ErrInvalidParameter)

	c.File = "missing.txt"
	_, err = c.collect(nil)
	assert.ErrorIs(t, err, errdefs.ErrSystem)
}

func TestParseCommand_parse(t *testing.T) {
	c := NewParseCommand()
	raws := []string{"osgi:service/com.foo.Bar", "a/(b/c)/d", "osgi:service/com.foo.Bar"}
	got, err := c.parse(context.Background(), raws)
	require.NoError(t, err)
	require.Len(t, got, len(raws))
	for i, raw := range raws {
		assert.True(t, servicename.Parse(raw).Equal(got[i]), raw)
	}
}

func TestRender(t *testing.T) {
	names := []servicename.Name{
		servicename.Parse("osgi:service/com.foo.Bar/(vendor=Acme)"),
		servicename.Parse("noscheme"),
	}

	t.Run("text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, render(buf, &options.Output{Format: options.FormatText, NoColor: true}, names))
		want := strings.TrimLeft(`
osgi:service/com.foo.Bar/(vendor=Acme)
  kind:         filtered
  components:   ["osgi:service" "com.foo.Bar" "(vendor=Acme)"]
  scheme:       osgi
  scheme path:  service
  interface:    com.foo.Bar
  filter:       (vendor=Acme)
  service name: com.foo.Bar/(vendor=Acme)
  query:        (&(objectClass=com.foo.Bar)(vendor=Acme))
noscheme
  kind:         scheme-only
  components:   ["noscheme"]
`, "\n")
		assert.Equal(t, want, buf.String())
	})

	t.Run("text unregistered scheme", func(t *testing.T) {
		buf := &bytes.Buffer{}
		n := []servicename.Name{servicename.Parse("java:comp/env")}
		require.NoError(t, render(buf, &options.Output{Format: options.FormatText, NoColor: true}, n))
		assert.Contains(t, buf.String(), "  registered:   false\n")
	})

	t.Run("text empty interface", func(t *testing.T) {
		buf := &bytes.Buffer{}
		n := []servicename.Name{servicename.Parse("osgi:service/")}
		require.NoError(t, render(buf, &options.Output{Format: options.FormatText, NoColor: true}, n))
		want := strings.TrimLeft(`
osgi:service/
  kind:         interface
  components:   ["osgi:service" ""]
  scheme:       osgi
  scheme path:  service
  interface:    ""
  service name: ""
  query:        (objectClass=)
`, "\n")
		assert.Equal(t, want, buf.String())
	})

	t.Run("json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, render(buf, &options.Output{Format: options.FormatJSON}, names))
		var got []servicename.Description
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, []servicename.Description{names[0].Describe(), names[1].Describe()}, got)
	})

	t.Run("yaml", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, render(buf, &options.Output{Format: "YAML"}, names))
		var got []servicename.Description
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, []servicename.Description{names[0].Describe(), names[1].Describe()}, got)
	})
}

func TestGetCommand_get(t *testing.T) {
	c := NewGetCommand()
	ctx := context.Background()

	got, err := c.get(ctx, "osgi:servicelist/com.foo.Bar/a/b", "3")
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	_, err = c.get(ctx, "osgi:service/com.foo.Bar", "2")
	assert.ErrorIs(t, err, servicename.ErrIndexOutOfRange)

	_, err = c.get(ctx, "osgi:service/com.foo.Bar", "one")
	assert.ErrorIs(t, err, errdefs.ErrInvalidParameter)
}

func TestGetCommand_getLogsToContextLogger(t *testing.T) {
	stdout := &bytes.Buffer{}
	c := NewGetCommand()
	c.Common.Debug = true
	lc := c.Common.LogConfig()
	lc.AddSource = false
	lc.AttrReplacer = xlog.SuppressTimeAttrReplacer()
	lc.StdWriter = stdout
	ctx := xlog.NewContext(context.Background(), xlog.New(lc))

	got, err := c.get(ctx, "osgi:service/com.foo.Bar", "1")
	require.NoError(t, err)
	assert.Equal(t, "com.foo.Bar", got)
	assert.Equal(t, "level=DEBUG msg=\"get component\" name=osgi:service/com.foo.Bar index=1 len=2\n", stdout.String())
}
