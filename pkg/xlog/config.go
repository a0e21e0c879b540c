package xlog

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewConfig returns the default logging configuration: info level, text to
// stderr and no log file.
func NewConfig() Config {
	return Config{
		Level:        slog.LevelInfo,
		AddSource:    true,
		AttrReplacer: NormalizeSourceAttrReplacer(),
		StdFormat:    "text",
		StdWriter:    os.Stderr,
		MaxSize:      30,
	}
}

// Config describes where and how log records are written.
type Config struct {
	Level        slog.Level
	AddSource    bool
	AttrReplacer AttrReplacer

	// StdFormat is one of "text" or "json".
	StdFormat string
	StdWriter io.Writer

	// Path enables JSON output to a rotating file when not empty.
	Path string
	// MaxSize is the size in megabytes at which the file is rotated.
	MaxSize    int
	MaxAge     int
	MaxBackups int
	Compress   bool
}

// BuildHandler creates a new slog.Handler with config.
func (c *Config) BuildHandler() slog.Handler {
	opts := c.buildHandlerOptions()
	fw := c.buildFileWriter()
	if c.StdFormat == "json" {
		writer := c.StdWriter
		if fw != nil {
			writer = io.MultiWriter(c.StdWriter, fw)
		}
		return NewLeveledHandlerCreator(JSONHandlerCreator)(writer, opts)
	}

	handlers := []slog.Handler{
		NewLeveledHandlerCreator(TextHandlerCreator)(c.StdWriter, opts),
	}
	if fw != nil {
		handlers = append(handlers, NewLeveledHandlerCreator(JSONHandlerCreator)(fw, opts))
	}
	return MultiHandler(handlers...)
}

func (c *Config) buildFileWriter() io.Writer {
	if c.Path == "" {
		return nil
	}
	return &lumberjack.Logger{
		Filename:   c.Path,
		MaxSize:    c.MaxSize,
		MaxAge:     c.MaxAge,
		MaxBackups: c.MaxBackups,
		Compress:   c.Compress,
	}
}

func (c *Config) buildHandlerOptions() *slog.HandlerOptions {
	opts := &slog.HandlerOptions{
		AddSource: c.AddSource,
		Level:     c.Level,
	}
	if c.AttrReplacer != nil {
		opts.ReplaceAttr = c.AttrReplacer
	}
	return opts
}
