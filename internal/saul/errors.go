package saul

import "errors"

// Domain errors for the saul package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, saul.ErrDeviceNotFound) {
//	    // handle absent device
//	}
var (
	// ErrDeviceNotFound is returned when no device matches a lookup.
	ErrDeviceNotFound = errors.New("saul: device not found")

	// ErrDeviceExists is returned when registering a name that is already taken.
	ErrDeviceExists = errors.New("saul: device already registered")

	// ErrInvalidDevice is returned when a device fails registration checks.
	ErrInvalidDevice = errors.New("saul: invalid device")

	// ErrInvalidCategory is returned for category codes outside the enumeration.
	ErrInvalidCategory = errors.New("saul: invalid category")

	// ErrReadFailed is returned when a device driver fails to produce a reading.
	ErrReadFailed = errors.New("saul: read failed")
)
