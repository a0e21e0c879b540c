// Package appinfo holds the build information of the application.
package appinfo

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set at build time, for example:
//
//	go build -ldflags '-X github.com/wuxler/svcname/pkg/appinfo.version=v1.0.0'
var (
	version   = "dev"
	buildDate = "1970-01-01T00:00:00Z"
	gitCommit = ""
	gitTag    = ""
)

// Version records the application version and the build environment.
type Version struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit,omitempty" yaml:"git_commit,omitempty"`
	GitTag    string `json:"git_tag,omitempty" yaml:"git_tag,omitempty"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// GetVersion returns the Version of the application.
func GetVersion() Version {
	return Version{
		Version:   version,
		GitCommit: gitCommit,
		GitTag:    gitTag,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// NewVersionWriter returns a *VersionWriter for v.
func NewVersionWriter(v Version) *VersionWriter {
	return &VersionWriter{version: v}
}

// VersionWriter renders a Version.
type VersionWriter struct {
	version Version

	short   bool
	format  string
	appName string
}

// SetShort selects the one-line output.
func (vw *VersionWriter) SetShort(short bool) *VersionWriter {
	vw.short = short
	return vw
}

// SetFormat selects "text", "json" or "yaml".
func (vw *VersionWriter) SetFormat(format string) *VersionWriter {
	vw.format = format
	return vw
}

// SetAppName sets the application name printed in text output.
func (vw *VersionWriter) SetAppName(name string) *VersionWriter {
	vw.appName = name
	return vw
}

// Write writes the version to w.
func (vw *VersionWriter) Write(w io.Writer) error {
	switch strings.ToLower(vw.format) {
	case "yaml", "yml":
		return yaml.NewEncoder(w).Encode(vw.version)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(vw.version)
	}
	if vw.short {
		_, err := fmt.Fprintln(w, vw.ShortLine())
		return err
	}
	_, err := io.WriteString(w, vw.Extended())
	return err
}

// ShortLine returns the version with the commit when known.
func (vw *VersionWriter) ShortLine() string {
	s := vw.version.Version
	if vw.version.GitCommit != "" {
		s += " (" + vw.version.GitCommit + ")"
	}
	return s
}

// Extended returns the multi-line version description.
func (vw *VersionWriter) Extended() string {
	v := vw.version
	var b strings.Builder
	if vw.appName != "" {
		fmt.Fprintf(&b, "Application : %s\n", vw.appName)
	}
	fmt.Fprintf(&b, "Version     : %s\n", v.Version)
	fmt.Fprintf(&b, "GitCommit   : %s\n", v.GitCommit)
	fmt.Fprintf(&b, "GitTag      : %s\n", v.GitTag)
	fmt.Fprintf(&b, "BuildDate   : %s\n", v.BuildDate)
	fmt.Fprintf(&b, "GoVersion   : %s\n", v.GoVersion)
	fmt.Fprintf(&b, "Platform    : %s\n", v.Platform)
	return b.String()
}
