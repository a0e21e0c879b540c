package server_test

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/svcname/pkg/commands/server"
	"github.com/wuxler/svcname/pkg/errdefs"
	"github.com/wuxler/svcname/pkg/servicename"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	parser, err := servicename.NewParser()
	require.NoError(t, err)
	t.Cleanup(parser.Close)
	return server.NewRouter(context.Background(), parser)
}

func TestRouter_Ping(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouter_Names(t *testing.T) {
	testcases := []struct {
		name string
		want servicename.Description
	}{
		{
			name: "osgi:service/com.foo.Bar/(vendor=Acme)",
			want: servicename.Parse("osgi:service/com.foo.Bar/(vendor=Acme)").Describe(),
		},
		{
			name: "",
			want: servicename.Description{Components: []string{""}, Kind: "scheme-only"},
		},
		{
			name: "a/(b/c)/d",
			want: servicename.Parse("a/(b/c)/d").Describe(),
		},
	}
	router := newTestRouter(t)
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			target := "/v1/names?" + url.Values{"name": []string{tc.name}}.Encode()
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			var got servicename.Description
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRouter_NamesMissingParameter(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/names", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"query parameter \"name\" is required"}`, rec.Body.String())
}

func runCommand(ctx context.Context, c *server.Command) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- c.Run(ctx, &cli.Command{Writer: io.Discard})
	}()
	return done
}

func TestCommand_RunAddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	c := server.New()
	c.Server.Host = "127.0.0.1"
	c.Server.Port = int64(ln.Addr().(*net.TCPAddr).Port)

	select {
	case err := <-runCommand(context.Background(), c):
		assert.ErrorIs(t, err, errdefs.ErrSystem)
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not return while the address was in use")
	}
}

func TestCommand_RunShutdown(t *testing.T) {
	c := server.New()
	c.Server.Host = "127.0.0.1"
	c.Server.Port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := runCommand(ctx, c)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}
}
