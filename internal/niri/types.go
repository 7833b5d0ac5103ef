package niri

// Mode describes one display mode advertised by an output.
type Mode struct {
	Width       int  `json:"width"`
	Height      int  `json:"height"`
	RefreshRate int  `json:"refresh_rate"`
	IsPreferred bool `json:"is_preferred"`
}

// Output mirrors the compositor's per-output record from the outputs reply.
type Output struct {
	Name         string `json:"name"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Modes        []Mode `json:"modes"`
	CurrentMode  *int   `json:"current_mode"`
	VrrSupported bool   `json:"vrr_supported"`
	VrrEnabled   bool   `json:"vrr_enabled"`
}

// Active reports whether the output currently has an assigned mode.
func (o Output) Active() bool {
	return o.CurrentMode != nil
}

// OutputAction is the on/off instruction sent with an output command.
type OutputAction string

const (
	// OutputOn turns the target output on.
	OutputOn OutputAction = "On"
	// OutputOff turns the target output off.
	OutputOff OutputAction = "Off"
)
