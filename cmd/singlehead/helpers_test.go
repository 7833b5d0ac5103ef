package main

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/singlehead/singlehead/internal/logger"
	"github.com/singlehead/singlehead/internal/niri"
	"github.com/singlehead/singlehead/internal/state"
)

type sentCommand struct {
	Name   string
	Action niri.OutputAction
}

// fakeClient serves a fixed output set and records every command sent.
type fakeClient struct {
	outputs    map[string]niri.Output
	outputsErr error
	commands   []sentCommand
}

func (f *fakeClient) Outputs() (map[string]niri.Output, error) {
	if f.outputsErr != nil {
		return nil, f.outputsErr
	}
	return f.outputs, nil
}

func (f *fakeClient) SetOutput(name string, action niri.OutputAction) error {
	f.commands = append(f.commands, sentCommand{Name: name, Action: action})
	return nil
}

func activeMode() *int {
	mode := 0
	return &mode
}

func testAppContext(t *testing.T, client niri.Client) *AppContext {
	t.Helper()

	log, err := logger.New(logger.Options{Level: "debug", Writer: io.Discard})
	require.NoError(t, err)

	return &AppContext{
		Log:    log,
		Client: client,
		Store:  state.NewStore(filepath.Join(t.TempDir(), "niri", "last-output")),
	}
}

var errSocketGone = errors.New("connect: no such file or directory")
