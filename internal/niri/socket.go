package niri

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	apperrors "github.com/singlehead/singlehead/pkg/errors"
)

// SocketEnv names the environment variable the compositor sets with the
// path of its IPC socket.
const SocketEnv = "NIRI_SOCKET"

// SocketPath resolves the IPC socket path. An explicit override wins,
// otherwise the compositor's environment variable must be set.
func SocketPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if path := os.Getenv(SocketEnv); path != "" {
		return path, nil
	}
	return "", fmt.Errorf("%s is not set; pass --socket or run inside a niri session", SocketEnv)
}

// Ping checks that the compositor socket accepts connections.
func Ping(path string) error {
	conn, err := net.Dial("unix", path)
	if err != nil {
		return apperrors.NewTransportError("connecting to compositor socket", err)
	}
	return conn.Close()
}

// SocketClient speaks the compositor's IPC protocol: one JSON-encoded
// request per line on a unix stream socket, one JSON reply line back. Every
// request uses a fresh connection, matching the one-shot request/reply
// contract of the endpoint.
type SocketClient struct {
	path string
}

// NewSocketClient returns a client bound to the given socket path.
func NewSocketClient(path string) *SocketClient {
	return &SocketClient{path: path}
}

var _ Client = (*SocketClient)(nil)

// reply is the compositor's result envelope: exactly one of Ok or Err is set.
type reply struct {
	Ok  json.RawMessage `json:"Ok"`
	Err *string         `json:"Err"`
}

type outputCommand struct {
	Output string       `json:"output"`
	Action OutputAction `json:"action"`
}

// Outputs queries the compositor for its current output set.
func (c *SocketClient) Outputs() (map[string]Output, error) {
	const op = "querying outputs"

	raw, err := c.roundTrip(op, "Outputs")
	if err != nil {
		return nil, err
	}

	var decoded struct {
		Outputs map[string]Output `json:"Outputs"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, apperrors.NewTransportError(op, err)
	}
	if decoded.Outputs == nil {
		return nil, apperrors.NewTransportError(op, errors.New("unexpected response variant"))
	}
	return decoded.Outputs, nil
}

// SetOutput sends one on/off command and waits for the acknowledgement.
func (c *SocketClient) SetOutput(name string, action OutputAction) error {
	op := fmt.Sprintf("commanding output %s %s", name, action)

	request := map[string]outputCommand{
		"Output": {Output: name, Action: action},
	}
	_, err := c.roundTrip(op, request)
	return err
}

func (c *SocketClient) roundTrip(op string, request any) (json.RawMessage, error) {
	conn, err := net.Dial("unix", c.path)
	if err != nil {
		return nil, apperrors.NewTransportError(op, err)
	}
	defer conn.Close()

	return exchange(conn, op, request)
}

// exchange performs one request/reply cycle on an established connection.
func exchange(conn io.ReadWriter, op string, request any) (json.RawMessage, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, apperrors.NewTransportError(op, err)
	}
	payload = append(payload, '\n')

	if _, err := conn.Write(payload); err != nil {
		return nil, apperrors.NewTransportError(op, err)
	}

	line, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil && (!errors.Is(err, io.EOF) || len(line) == 0) {
		return nil, apperrors.NewTransportError(op, err)
	}

	var rep reply
	if err := json.Unmarshal(line, &rep); err != nil {
		return nil, apperrors.NewTransportError(op, err)
	}
	if rep.Err != nil {
		return nil, apperrors.NewTransportError(op, errors.New(*rep.Err))
	}
	if len(rep.Ok) == 0 {
		return nil, apperrors.NewTransportError(op, errors.New("malformed reply"))
	}
	return rep.Ok, nil
}
