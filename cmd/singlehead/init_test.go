package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/singlehead/singlehead/internal/niri"
	apperrors "github.com/singlehead/singlehead/pkg/errors"
)

func TestRunInitRestoresPersistedOutput(t *testing.T) {
	t.Parallel()

	client := &fakeClient{outputs: map[string]niri.Output{
		"DP-1":   {Name: "DP-1", CurrentMode: activeMode()},
		"DP-2":   {Name: "DP-2"},
		"HDMI-1": {Name: "HDMI-1"},
	}}
	app := testAppContext(t, client)
	require.NoError(t, app.Store.Write("DP-2"))

	require.NoError(t, runInit(app))

	require.Equal(t, []sentCommand{
		{Name: "DP-1", Action: niri.OutputOff},
		{Name: "DP-2", Action: niri.OutputOn},
		{Name: "HDMI-1", Action: niri.OutputOff},
	}, client.commands)
	require.Equal(t, "DP-2", app.Store.Read())
}

func TestRunInitFallsBackToActiveOutput(t *testing.T) {
	t.Parallel()

	client := &fakeClient{outputs: map[string]niri.Output{
		"DP-1": {Name: "DP-1"},
		"DP-2": {Name: "DP-2", CurrentMode: activeMode()},
	}}
	app := testAppContext(t, client)
	require.NoError(t, app.Store.Write("LVDS-1"))

	require.NoError(t, runInit(app))
	require.Equal(t, "DP-2", app.Store.Read())
}

func TestRunInitFirstRunPicksFirstOutput(t *testing.T) {
	t.Parallel()

	client := &fakeClient{outputs: map[string]niri.Output{
		"eDP-1": {Name: "eDP-1"},
		"DP-1":  {Name: "DP-1"},
	}}
	app := testAppContext(t, client)

	require.NoError(t, runInit(app))
	require.Equal(t, "DP-1", app.Store.Read())
}

func TestRunInitEmptySnapshotIsFatal(t *testing.T) {
	t.Parallel()

	client := &fakeClient{outputs: map[string]niri.Output{}}
	app := testAppContext(t, client)

	err := runInit(app)

	var emptyErr *apperrors.EmptySnapshotError
	require.ErrorAs(t, err, &emptyErr)
	require.Empty(t, client.commands)
	require.Equal(t, "", app.Store.Read())
}

func TestRunInitPropagatesQueryFailure(t *testing.T) {
	t.Parallel()

	client := &fakeClient{outputsErr: apperrors.NewTransportError("querying outputs", errSocketGone)}
	app := testAppContext(t, client)

	err := runInit(app)

	var transportErr *apperrors.TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Empty(t, client.commands)
}
