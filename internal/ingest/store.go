package ingest

import (
	"sync"

	"github.com/senselink/senselink-core/internal/saul"
)

// Store holds the last reported reading per device name.
//
// All methods are thread-safe: the bridge writes from MQTT handler
// goroutines while the protocol layer reads concurrently.
type Store struct {
	mu       sync.RWMutex
	readings map[string]saul.Reading
}

// NewStore creates an empty reading store.
func NewStore() *Store {
	return &Store{readings: make(map[string]saul.Reading)}
}

// Set replaces the stored reading for a device.
func (s *Store) Set(name string, r saul.Reading) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readings[name] = r
}

// Get returns the stored reading for a device. A device that has never
// reported returns a zero reading with Dim 0.
func (s *Store) Get(name string) saul.Reading {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readings[name]
}

// Delete removes a device's stored reading.
func (s *Store) Delete(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.readings, name)
}

// Len returns the number of devices with a stored reading.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.readings)
}

// StoreReader is a saul.Reader that serves the last value the store holds
// for one device name.
type StoreReader struct {
	store *Store
	name  string
}

// NewStoreReader binds a reader to a device name in the store.
func NewStoreReader(store *Store, name string) *StoreReader {
	return &StoreReader{store: store, name: name}
}

// Read returns the device's last stored reading. Absence is not an error;
// the zero reading's Dim of 0 tells the caller there is no data yet.
func (r *StoreReader) Read() (saul.Reading, error) {
	return r.store.Get(r.name), nil
}
