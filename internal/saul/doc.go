// Package saul provides the device directory for SenseLink Core.
//
// The directory is the live catalogue of every sensor and actuator attached
// to a node. Devices are held in a singly-linked list in registration order;
// the protocol layer resolves requests against that order, so it is part of
// the contract, not an implementation detail.
//
// # Architecture
//
//	┌──────────────────────────────────────────────────────────────────┐
//	│                        Device Directory                          │
//	│                                                                  │
//	│  ┌────────────────┐    ┌────────────────┐    ┌────────────────┐  │
//	│  │    Registry    │    │   Repository   │    │    Category    │  │
//	│  │ (registry.go)  │───▶│(repository.go) │    │ (category.go)  │  │
//	│  │                │    │                │    │                │  │
//	│  │ • linked list  │    │ • SQLite rows  │    │ • closed enum  │  │
//	│  │ • ordinal find │    │ • driver kind  │    │ • display name │  │
//	│  │ • thread safe  │    │ • config JSON  │    │   mapping      │  │
//	│  └────────────────┘    └────────────────┘    └────────────────┘  │
//	│          │                                                       │
//	└──────────│───────────────────────────────────────────────────────┘
//	           ▼
//	  endpoint dispatcher (count / lookup-by-index / read-by-category)
//
// # Key Types
//
//   - Device: a registered sensor or actuator (name, category, driver)
//   - Category: the closed sensor/actuator classification (SENSE_TEMP, ACT_SERVO, ...)
//   - Reading: a fixed three-channel measurement with unit and scale exponent
//   - Reader: the driver interface a device reads through
//   - Registry: the ordered, mutable device list
//   - Repository: persistence for device records across restarts
//
// # Usage
//
//	reg := saul.NewRegistry()
//	reg.SetLogger(log)
//
//	err := reg.Register(&saul.Device{
//	    Name:     "tmp0",
//	    Category: saul.SenseTemp,
//	    Driver:   saul.NewStaticReader([]int16{2150}, saul.UnitCelsius, -2),
//	})
//
//	dev, err := reg.FindFirstByCategory(saul.SenseTemp)
//	reading, err := reg.Read(dev)
//
// # Thread Safety
//
// The Registry is safe for concurrent use. Devices may be attached and
// detached while requests are being resolved; traversal is always bounded by
// the list's nil terminator, never by a previously observed count.
package saul
