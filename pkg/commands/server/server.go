// Package server serves service name parsing over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/svcname/pkg/cmdhelper"
	"github.com/wuxler/svcname/pkg/commands/internal/options"
	"github.com/wuxler/svcname/pkg/errdefs"
	"github.com/wuxler/svcname/pkg/servicename"
	"github.com/wuxler/svcname/pkg/xlog"
)

// New creates a new Command with default values.
func New() *Command {
	return &Command{
		Common: options.NewCommon(),
		Server: options.NewServer(),
	}
}

// Command starts the parse server.
type Command struct {
	Common *options.Common
	Server *options.Server
}

// ToCLI transforms to a *cli.Command.
func (c *Command) ToCLI() *cli.Command {
	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"server", "srv"},
		Usage:   "Serve service name parsing over HTTP",
		UsageText: `svcname serve [OPTIONS]

# Start the server with default port 8080
$ svcname serve

# Parse a name through the server
$ curl 'http://127.0.0.1:8080/v1/names?name=osgi:service/com.foo.Bar'
`,
		Flags:  c.Flags(),
		Action: cmdhelper.Chain(cmdhelper.NoArgs(), c.Run),
	}
}

// Flags defines the flags related to the current command.
func (c *Command) Flags() []cli.Flag {
	flags := []cli.Flag{}
	flags = append(flags, c.Common.Flags()...)
	flags = append(flags, c.Server.Flags()...)
	return flags
}

// Run is the main function for the current command.
func (c *Command) Run(ctx context.Context, cmd *cli.Command) error {
	ctx = c.Common.Apply(ctx)
	address := c.Server.Address()

	parser, err := servicename.NewParser()
	if err != nil {
		return err
	}
	defer parser.Close()

	ln, err := net.Listen("tcp", address)
	if err != nil {
		return errdefs.NewE(errdefs.ErrSystem, err)
	}
	srv := &http.Server{
		Handler:           NewRouter(ctx, parser),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	xlog.C(ctx).InfoContext(ctx, "server started", "address", ln.Addr().String())
	cmdhelper.Fprintf(cmd.Writer, "Server started at http://%s", ln.Addr())
	cmdhelper.Fprintf(cmd.Writer, "Press Ctrl+C to stop the server")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		xlog.C(ctx).ErrorContext(ctx, "server error", "error", err)
		return errdefs.NewE(errdefs.ErrSystem, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second) //nolint:mnd // shutdown grace period
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		xlog.C(ctx).ErrorContext(ctx, "server shutdown failed", "error", err)
		return err
	}
	xlog.C(ctx).InfoContext(ctx, "server stopped")
	return nil
}

// NewRouter returns the handler serving:
//
//	GET /ping
//	GET /v1/names?name=<name>
func NewRouter(ctx context.Context, parser *servicename.Parser) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	router.GET("/v1/names", func(c *gin.Context) {
		raw, ok := c.GetQuery("name")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter \"name\" is required"})
			return
		}
		n := parser.Parse(ctx, raw)
		xlog.C(ctx).DebugContext(ctx, "served name", "name", raw, "client", c.ClientIP())
		c.JSON(http.StatusOK, n.Describe())
	})
	return router
}
