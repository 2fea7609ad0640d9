package endpoint

import (
	"errors"

	"github.com/senselink/senselink-core/internal/saul"
	"github.com/senselink/senselink-core/internal/wire"
)

// Diagnostic payloads for not-found conditions. Written only when they fit
// the reply buffer; the status alone is authoritative.
const (
	diagDeviceNotFound = "device not found"
	diagNoValues       = "no values found"
)

// Directory is the view of the device directory the dispatcher consumes.
//
// The directory is shared and may be mutated (device attach/detach) between
// or during requests. Implementations must bound traversal by the list
// terminator, never by a previously observed count. A lookup racing a
// mutation may observe a shifted index or a missing device.
type Directory interface {
	// Count returns the current device total by full traversal.
	Count() int

	// FindByIndex returns the device at a zero-based position in
	// registration order, or saul.ErrDeviceNotFound.
	FindByIndex(i int) (*saul.Device, error)

	// FindFirstByCategory returns the first device of a category in
	// registration order, or saul.ErrDeviceNotFound.
	FindFirstByCategory(c saul.Category) (*saul.Device, error)

	// Read produces the device's current reading.
	Read(dev *saul.Device) (saul.Reading, error)
}

// ReadRecorder receives successful category reads for telemetry history.
// Implementations must not block; recording failures never affect replies.
type ReadRecorder interface {
	RecordRead(device string, category saul.Category, reading saul.Reading)
}

// Logger defines the logging interface used by the Dispatcher.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Request is one inbound registry request, already stripped of transport
// framing. Payload carries the body of submitted requests; Query carries
// the compact ampersand-prefixed query form.
type Request struct {
	Payload []byte
	Query   string
}

// Handler resolves one request into the reply buffer and returns the
// outcome status plus the number of payload bytes written. Handlers never
// write beyond len(buf).
type Handler func(req Request, buf []byte) (Status, int)

// Dispatcher ties selector decoding, directory resolution, and reply
// encoding together. It is state-free per request and safe for concurrent
// use as long as the Directory is.
type Dispatcher struct {
	dir      Directory
	recorder ReadRecorder
	logger   Logger
}

// NewDispatcher creates a dispatcher over the given directory.
func NewDispatcher(dir Directory) *Dispatcher {
	return &Dispatcher{dir: dir, logger: noopLogger{}}
}

// SetLogger sets the logger for the dispatcher.
func (d *Dispatcher) SetLogger(logger Logger) {
	d.logger = logger
}

// SetRecorder sets an optional recorder for successful category reads.
func (d *Dispatcher) SetRecorder(rec ReadRecorder) {
	d.recorder = rec
}

// Count handles the device-count request. The count is taken by full
// traversal at resolution time; the only failure path is an encoding
// overflow.
func (d *Dispatcher) Count(_ Request, buf []byte) (Status, int) {
	n, err := wire.EncodeInt(buf, int64(d.dir.Count()))
	if err != nil {
		d.logger.Error("reply buffer too small for device count", "capacity", len(buf))
		return StatusInternalError, 0
	}
	return StatusContent, n
}

// LookupByIndex handles the lookup-by-index request. The index arrives as
// decimal text in the request payload; the reply line is
// "<index>,<category>,<name>\n".
//
// If the directory mutates between a prior enumeration and this lookup the
// result may name a different device; that race belongs to the directory's
// owner and is accepted here.
func (d *Dispatcher) LookupByIndex(req Request, buf []byte) (Status, int) {
	idx, err := wire.DecodeIndex(req.Payload)
	if err != nil {
		return StatusBadRequest, 0
	}

	dev, err := d.dir.FindByIndex(idx)
	if err != nil {
		if errors.Is(err, saul.ErrDeviceNotFound) {
			return d.notFound(buf, diagDeviceNotFound)
		}
		d.logger.Error("index lookup failed", "index", idx, "error", err)
		return StatusInternalError, 0
	}

	name, ok := saul.CategoryName(dev.Category)
	if !ok {
		// Registration validates categories; an unnamed one here means a
		// corrupted record.
		d.logger.Error("device has unknown category", "name", dev.Name, "category", uint8(dev.Category))
		return StatusInternalError, 0
	}

	n, err := wire.EncodeDeviceLine(buf, idx, name, dev.Name)
	if err != nil {
		d.logger.Error("reply buffer too small for device line",
			"capacity", len(buf),
			"index", idx,
			"device", dev.Name,
		)
		return StatusInternalError, 0
	}
	return StatusChanged, n
}

// ReadByCategory handles the generic read-by-category request, with the
// category code carried in the query string.
func (d *Dispatcher) ReadByCategory(req Request, buf []byte) (Status, int) {
	code, err := wire.DecodeCategory(req.Query)
	if err != nil {
		return StatusBadRequest, 0
	}
	return d.resolveCategory(saul.Category(code), buf)
}

// resolveCategory is the one implementation behind ReadByCategory and every
// fixed-category entry point. Undefined codes match no device and surface
// as not-found; the dispatcher owns that semantic, not the decoder.
func (d *Dispatcher) resolveCategory(c saul.Category, buf []byte) (Status, int) {
	dev, err := d.dir.FindFirstByCategory(c)
	if err != nil {
		return d.notFound(buf, diagDeviceNotFound)
	}

	reading, err := d.dir.Read(dev)
	if err != nil {
		d.logger.Warn("device read failed", "device", dev.Name, "error", err)
		return d.notFound(buf, diagNoValues)
	}
	if reading.Dim <= 0 {
		return d.notFound(buf, diagNoValues)
	}

	n, err := wire.EncodeInt(buf, int64(reading.Values[0]))
	if err != nil {
		d.logger.Error("reply buffer too small for reading", "capacity", len(buf), "device", dev.Name)
		return StatusInternalError, 0
	}

	if d.recorder != nil {
		d.recorder.RecordRead(dev.Name, dev.Category, reading)
	}
	return StatusContent, n
}

// notFound writes the diagnostic when it fits, and degrades to status-only
// when it does not.
func (d *Dispatcher) notFound(buf []byte, diag string) (Status, int) {
	n, err := wire.EncodeString(buf, diag)
	if err != nil {
		d.logger.Debug("reply buffer too small for diagnostic", "capacity", len(buf))
		return StatusNotFound, 0
	}
	return StatusNotFound, n
}
