package niri

import (
	"bufio"
	"encoding/json"
	"net"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/singlehead/singlehead/pkg/errors"
)

// serveOnce answers a single request on a fresh unix socket with the given
// reply line and delivers the raw request over the returned channel.
func serveOnce(t *testing.T, reply string) (string, <-chan []byte) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "niri.sock")
	listener, err := net.Listen("unix", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = listener.Close() })

	requests := make(chan []byte, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		line, err := bufio.NewReader(conn).ReadBytes('\n')
		if err != nil {
			return
		}
		requests <- line
		_, _ = conn.Write([]byte(reply + "\n"))
	}()

	return path, requests
}

func TestSocketClientOutputs(t *testing.T) {
	t.Parallel()

	path, requests := serveOnce(t, `{"Ok":{"Outputs":{"eDP-1":{"name":"eDP-1","current_mode":0},"HDMI-A-1":{"name":"HDMI-A-1","current_mode":null}}}}`)

	client := NewSocketClient(path)
	outputs, err := client.Outputs()
	require.NoError(t, err)
	require.Len(t, outputs, 2)
	require.True(t, outputs["eDP-1"].Active())
	require.False(t, outputs["HDMI-A-1"].Active())

	var decoded string
	require.NoError(t, json.Unmarshal(<-requests, &decoded))
	require.Equal(t, "Outputs", decoded)
}

func TestSocketClientSetOutputEncodesCommand(t *testing.T) {
	t.Parallel()

	path, requests := serveOnce(t, `{"Ok":"Handled"}`)

	client := NewSocketClient(path)
	require.NoError(t, client.SetOutput("HDMI-A-1", OutputOff))

	var decoded map[string]outputCommand
	require.NoError(t, json.Unmarshal(<-requests, &decoded))
	require.Equal(t, outputCommand{Output: "HDMI-A-1", Action: OutputOff}, decoded["Output"])
}

func TestSocketClientErrReplyIsTransportError(t *testing.T) {
	t.Parallel()

	path, _ := serveOnce(t, `{"Err":"no such output"}`)

	client := NewSocketClient(path)
	err := client.SetOutput("DP-3", OutputOn)

	var transportErr *apperrors.TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Contains(t, err.Error(), "no such output")
}

func TestSocketClientUnexpectedVariantIsTransportError(t *testing.T) {
	t.Parallel()

	path, _ := serveOnce(t, `{"Ok":"Handled"}`)

	client := NewSocketClient(path)
	_, err := client.Outputs()

	var transportErr *apperrors.TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestSocketClientDialFailure(t *testing.T) {
	t.Parallel()

	client := NewSocketClient(filepath.Join(t.TempDir(), "absent.sock"))
	_, err := client.Outputs()

	var transportErr *apperrors.TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Equal(t, "querying outputs", transportErr.Op)
}

func TestPing(t *testing.T) {
	t.Parallel()

	path, _ := serveOnce(t, `{"Ok":"Handled"}`)
	require.NoError(t, Ping(path))

	err := Ping(filepath.Join(t.TempDir(), "absent.sock"))
	var transportErr *apperrors.TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestSocketPathPrefersOverride(t *testing.T) {
	t.Setenv(SocketEnv, "/run/user/1000/niri.sock")

	path, err := SocketPath("/tmp/custom.sock")
	require.NoError(t, err)
	require.Equal(t, "/tmp/custom.sock", path)

	path, err = SocketPath("")
	require.NoError(t, err)
	require.Equal(t, "/run/user/1000/niri.sock", path)
}

func TestSocketPathFailsWithoutEnv(t *testing.T) {
	t.Setenv(SocketEnv, "")

	_, err := SocketPath("")
	require.Error(t, err)
	require.Contains(t, err.Error(), SocketEnv)
}

func TestExchangeMalformedReply(t *testing.T) {
	t.Parallel()

	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	go func() {
		_, _ = bufio.NewReader(server).ReadBytes('\n')
		_, _ = server.Write([]byte("{}\n"))
	}()

	_, err := exchange(client, "querying outputs", "Outputs")
	var transportErr *apperrors.TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Contains(t, err.Error(), "malformed reply")
}
