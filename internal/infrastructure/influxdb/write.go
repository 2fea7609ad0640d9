package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteReading records a successfully served device reading.
//
// This is the primary method for building up reading history. The write is
// non-blocking; data is batched and sent asynchronously.
//
// Parameters:
//   - device: The device name (e.g., "tmp_0")
//   - category: The device category display name (e.g., "SENSE_TEMP")
//   - value: The scaled channel-0 value (raw * 10^scale)
//   - raw: The raw channel-0 value as served on the wire
//
// Example:
//
//	client.WriteReading("tmp_0", "SENSE_TEMP", 21.5, 2150)
func (c *Client) WriteReading(device string, category string, value float64, raw int64) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"readings",
		map[string]string{
			"device":   device,
			"category": category,
		},
		map[string]interface{}{
			"value": value,
			"raw":   raw,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WriteRegistrySize records the current device count after a registry change.
// Useful for tracking fleet churn over time.
func (c *Client) WriteRegistrySize(nodeID string, count int) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"registry",
		map[string]string{
			"node": nodeID,
		},
		map[string]interface{}{
			"devices": count,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WritePoint writes a custom point with full control over tags and fields.
//
// Use this for custom measurements that don't fit the helper methods.
//
// Parameters:
//   - measurement: The measurement name (table)
//   - tags: Key-value pairs for indexing (low cardinality)
//   - fields: Key-value pairs for the actual data
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, time.Now())
	c.writeAPI.WritePoint(point)
}

// WritePointWithTime writes a custom point with a specific timestamp.
//
// Use this when the timestamp is not "now" (e.g., delayed data).
func (c *Client) WritePointWithTime(measurement string, tags map[string]string, fields map[string]interface{}, timestamp time.Time) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, timestamp)
	c.writeAPI.WritePoint(point)
}
