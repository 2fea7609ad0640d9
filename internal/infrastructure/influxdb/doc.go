// Package influxdb provides InfluxDB connectivity for SenseLink Core.
//
// It wraps the official influxdb-client-go v2 library with patterns for
// connection management, reading recording, and health monitoring.
//
// # Purpose
//
// This package handles time-series data storage for:
//   - Readings served to clients (the "readings" measurement)
//   - Registry size over time (the "registry" measurement)
//
// # Usage
//
//	cfg := config.InfluxDBConfig{
//	    URL:    "http://localhost:8086",
//	    Token:  "your-token",
//	    Org:    "senselink",
//	    Bucket: "readings",
//	}
//
//	client, err := influxdb.Connect(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.WriteReading("tmp_0", "SENSE_TEMP", 21.5, 2150)
//
// # Thread Safety
//
// All methods are safe for concurrent use from multiple goroutines.
// The underlying write API uses non-blocking batched writes.
//
// # Error Handling
//
// Write operations are non-blocking and batch errors are logged via a callback.
// Connection and health check errors are returned directly.
//
// # Performance
//
// Writes are batched according to config.yaml settings (batch_size, flush_interval).
// This reduces network overhead for high-frequency telemetry data.
package influxdb
