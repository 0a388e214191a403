package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout is the fallback when the config carries none; a var so tests can override it.
var shutdownTimeout = 10 * time.Second
