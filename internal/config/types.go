package config

// Config is the optional configuration document. Every field has a working
// default; a missing config file is equivalent to an empty one.
type Config struct {
	// Socket overrides the compositor socket path ($NIRI_SOCKET otherwise).
	Socket string `yaml:"socket,omitempty"`
	// StateFile overrides the persisted-selection file location.
	StateFile string `yaml:"state_file,omitempty"`
	Logging   Logging `yaml:"logging,omitempty"`
}

// Logging holds log output parameters.
type Logging struct {
	Level  string `yaml:"level,omitempty" validate:"omitempty,log_level"`
	Format string `yaml:"format,omitempty" validate:"omitempty,oneof=auto console json"`
}
