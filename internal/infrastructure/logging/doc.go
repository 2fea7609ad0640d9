// Package logging provides the structured logger for SenseLink Core.
//
// It is a thin wrapper over log/slog: JSON (production) or text
// (development) handlers, level filtering, and service/version fields
// stamped on every entry. Configured through the logging section of
// config.yaml:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr
//
// Typical use:
//
//	log := logging.New(cfg.Logging, version)
//	log.Info("gateway starting", "address", addr)
//
// Packages that accept a pluggable logger (registry, dispatcher, bridge,
// MQTT client) take *Logger through their own small interfaces, so tests
// can substitute a no-op.
//
// Never log credentials or tokens; log key prefixes if identification is
// needed.
package logging
