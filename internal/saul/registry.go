package saul

import (
	"fmt"
	"sync"
)

// Logger defines the logging interface used by the Registry.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Device is a registered sensor or actuator.
//
// Name and Category are fixed at registration; the Driver is invoked for
// every read. Devices are owned by the Registry; callers hold references
// only for the duration of a single request.
type Device struct {
	Name     string
	Category Category
	Driver   Reader
}

// node is one link of the directory list.
type node struct {
	dev  *Device
	next *node
}

// Registry is the ordered, mutable device directory.
//
// Devices are kept in a singly-linked list in registration order. The order
// is stable between mutations, but the list may grow or shrink at any time;
// every operation traverses from the head to the nil terminator rather than
// trusting a cached count.
//
// All public methods are thread-safe.
type Registry struct {
	mu     sync.RWMutex
	head   *node
	logger Logger
}

// NewRegistry creates an empty device registry.
func NewRegistry() *Registry {
	return &Registry{logger: noopLogger{}}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.logger = logger
}

// Register appends a device to the end of the directory.
//
// The device must have a non-empty name, a defined category, and a driver.
// Names are unique; registering a taken name returns ErrDeviceExists.
func (r *Registry) Register(dev *Device) error {
	if dev == nil || dev.Name == "" || dev.Driver == nil {
		return ErrInvalidDevice
	}
	if !dev.Category.IsDefined() {
		return fmt.Errorf("%w: code %#02x", ErrInvalidCategory, uint8(dev.Category))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Walk to the tail, checking for a name collision on the way.
	var tail *node
	for n := r.head; n != nil; n = n.next {
		if n.dev.Name == dev.Name {
			return fmt.Errorf("%w: %q", ErrDeviceExists, dev.Name)
		}
		tail = n
	}

	link := &node{dev: dev}
	if tail == nil {
		r.head = link
	} else {
		tail.next = link
	}

	r.logger.Info("device registered", "name", dev.Name, "category", dev.Category.String())
	return nil
}

// Deregister removes the device with the given name.
// Returns ErrDeviceNotFound if no such device is registered.
func (r *Registry) Deregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var prev *node
	for n := r.head; n != nil; n = n.next {
		if n.dev.Name == name {
			if prev == nil {
				r.head = n.next
			} else {
				prev.next = n.next
			}
			r.logger.Info("device deregistered", "name", name)
			return nil
		}
		prev = n
	}
	return ErrDeviceNotFound
}

// Count returns the number of registered devices by full traversal.
//
// The count is only valid for the moment it was taken: the directory may
// mutate before a follow-up lookup.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := 0
	for n := r.head; n != nil; n = n.next {
		i++
	}
	return i
}

// FindByIndex returns the device at the given zero-based position in
// registration order. Returns ErrDeviceNotFound if the index is negative or
// past the end of the current list.
func (r *Registry) FindByIndex(i int) (*Device, error) {
	if i < 0 {
		return nil, ErrDeviceNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	pos := 0
	for n := r.head; n != nil; n = n.next {
		if pos == i {
			return n.dev, nil
		}
		pos++
	}
	return nil, ErrDeviceNotFound
}

// FindFirstByCategory returns the first device, in registration order, whose
// category equals the given code. Returns ErrDeviceNotFound if none matches;
// undefined codes simply match nothing.
func (r *Registry) FindFirstByCategory(c Category) (*Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for n := r.head; n != nil; n = n.next {
		if n.dev.Category == c {
			return n.dev, nil
		}
	}
	return nil, ErrDeviceNotFound
}

// FindByName returns the device with the given name.
func (r *Registry) FindByName(name string) (*Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for n := r.head; n != nil; n = n.next {
		if n.dev.Name == name {
			return n.dev, nil
		}
	}
	return nil, ErrDeviceNotFound
}

// Read invokes the device's driver and returns its current reading.
//
// A driver failure is wrapped in ErrReadFailed. A successful read with
// Dim <= 0 is not an error here; the caller decides how to surface a
// reading with no valid channels.
func (r *Registry) Read(dev *Device) (Reading, error) {
	if dev == nil || dev.Driver == nil {
		return Reading{}, ErrInvalidDevice
	}

	reading, err := dev.Driver.Read()
	if err != nil {
		return Reading{}, fmt.Errorf("%w: %q: %w", ErrReadFailed, dev.Name, err)
	}
	return reading, nil
}

// List returns a snapshot of all registered devices in registration order.
// The slice is fresh; the Device pointers are the live records.
func (r *Registry) List() []*Device {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var devices []*Device
	for n := r.head; n != nil; n = n.next {
		devices = append(devices, n.dev)
	}
	return devices
}
