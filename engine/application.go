package engine

type ApplicationConfig struct {
	// The application name, used in log lines.
	Name string
	// Path of the TOML config file. Empty means built-in defaults.
	ConfigPath string
	// Keep running and re-run the game whenever the config file changes.
	Watch bool
	// Capacity of the event queue.
	EventQueueSize int
}
