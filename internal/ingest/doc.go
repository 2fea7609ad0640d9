// Package ingest bridges field devices on the MQTT bus into the device
// registry.
//
// Two topic families drive the bridge:
//
//	senselink/announce/<name>   attach/detach lifecycle messages
//	senselink/reading/<name>    last-value reading updates
//
// An online announcement registers the device with an MQTT-backed driver and
// persists its record; an offline announcement deregisters it. Reading
// messages land in a last-value Store that the driver serves to the protocol
// layer. A device that has announced but never reported reads as empty
// until its first value arrives.
//
// The bridge is push-driven and holds no broker state of its own: it relies
// on the client's re-subscribe behavior across reconnects.
package ingest
