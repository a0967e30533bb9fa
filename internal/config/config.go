package config

import "time"

// Environment variables read by the commands.
const (
	EnvTrace     = "APPROACH_TRACE"      // bool, log intermediate values of every query
	EnvLogLevel  = "APPROACH_LOG_LEVEL"  // debug, info, warn, error
	EnvLogFormat = "APPROACH_LOG_FORMAT" // text or logfmt
	EnvRadius    = "APPROACH_RADIUS"     // collision radius reported with results
)

// Logging
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Session
const (
	Prompt        = "> "
	DefaultRadius = 0.0 // no collision report
)

// SSH server
const (
	DefaultSSHHost        = "::"
	DefaultSSHPort        = "2222"
	DefaultSSHHostKeyPath = "/app/keys/host_key"
	SessionIdleTimeout    = 2 * time.Minute
	ShutdownTimeout       = 5 * time.Second
)
