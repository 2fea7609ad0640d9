// Package endpoint resolves inbound registry requests against the device
// directory and encodes replies into bounded buffers.
//
// This is the contract surface of SenseLink Core: given a request and an
// output buffer of caller-chosen capacity, each handler determines the
// target device(s), reads where needed, and produces either a payload or a
// precise error status. Handlers never write past the buffer and never emit
// a partially written record; a reply that cannot fit in full degrades to
// a status-only internal error.
//
// # Request Kinds
//
//   - Count: the current device total, by full directory traversal
//   - Lookup-by-index: identity of the device at a zero-based position
//   - Read-by-category: channel 0 of the first device of a category
//
// The fixed-path entry points (/temp, /hum, /press, /voltage, /servo) are
// bound literals over the one read-by-category implementation; the resource
// table in table.go is the single place paths and handlers meet.
//
// # Error Taxonomy
//
//   - malformed selector  → StatusBadRequest, directory never consulted
//   - no matching device  → StatusNotFound, "device not found"
//   - read with no data   → StatusNotFound, "no values found"
//   - reply would overflow → StatusInternalError, nothing written
//
// Every condition is local to one request; the dispatcher is state-free and
// keeps serving.
package endpoint
