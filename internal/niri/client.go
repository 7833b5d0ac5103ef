package niri

// Client is the capability the selection core uses to reach the compositor.
// The socket implementation lives in this package; tests substitute an
// in-memory recorder.
type Client interface {
	// Outputs returns the compositor's current outputs keyed by name.
	Outputs() (map[string]Output, error)
	// SetOutput issues one on/off command for the named output and blocks
	// until the compositor acknowledges it.
	SetOutput(name string, action OutputAction) error
}
