package options

import (
	"fmt"

	"github.com/urfave/cli/v3"
)

const (
	// ServerFlagCategory is the category of the server flags.
	ServerFlagCategory = "[Server]"

	// DefaultServerPort is the default port for the server to listen on.
	DefaultServerPort int64 = 8080

	// DefaultServerHost is the default host for the server to listen on.
	DefaultServerHost = "127.0.0.1"
)

// NewServer returns a *Server with default values.
func NewServer() *Server {
	return &Server{
		Port: DefaultServerPort,
		Host: DefaultServerHost,
	}
}

// Server defines the listen address of the parse server.
type Server struct {
	Port int64
	Host string
}

// Flags returns the []cli.Flag related to current options.
func (o *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "port",
			Aliases:     []string{"p"},
			Usage:       "port to listen on",
			Sources:     cli.EnvVars("SVCNAME_SERVER_PORT"),
			Value:       o.Port,
			Destination: &o.Port,
			Category:    ServerFlagCategory,
		},
		&cli.StringFlag{
			Name:        "host",
			Usage:       "host to listen on",
			Sources:     cli.EnvVars("SVCNAME_SERVER_HOST"),
			Value:       o.Host,
			Destination: &o.Host,
			Category:    ServerFlagCategory,
		},
	}
}

// Address returns the server address format as host:port.
func (o *Server) Address() string {
	return fmt.Sprintf("%s:%d", o.Host, o.Port)
}
