package influxdb

import "errors"

// Sentinel errors for the reading-history client.
var (
	// ErrNotConnected is returned for writes attempted before Connect or
	// after Close.
	ErrNotConnected = errors.New("influxdb: not connected")

	// ErrConnectionFailed is returned when the initial ping at Connect
	// fails. Write errors after that arrive via the SetOnError callback.
	ErrConnectionFailed = errors.New("influxdb: connection failed")

	// ErrDisabled is returned by Connect when history recording is turned
	// off in configuration.
	ErrDisabled = errors.New("influxdb: disabled in configuration")
)
