package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/senselink/senselink-core/internal/infrastructure/mqtt"
	"github.com/senselink/senselink-core/internal/saul"
)

// DriverKindMQTT is the driver kind recorded for bridge-registered devices.
const DriverKindMQTT = "mqtt"

// subscribeQoS is the QoS for bridge subscriptions. At-least-once: a missed
// announcement strands a device, a duplicate is idempotent.
const subscribeQoS = 1

// Logger defines the logging interface used by the Bridge.
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

// Subscriber is the slice of the MQTT client the bridge consumes.
type Subscriber interface {
	Subscribe(topic string, qos byte, handler mqtt.MessageHandler) error
}

// Directory is the registry surface the bridge mutates.
type Directory interface {
	Register(dev *saul.Device) error
	Deregister(name string) error
}

// announcement is the payload of an announce message. The device name
// travels in the topic, not the body.
type announcement struct {
	Category string `json:"category"`
	Status   string `json:"status"`
}

// Announcement statuses.
const (
	statusOnline  = "online"
	statusOffline = "offline"
)

// readingMessage is the payload of a reading message. Dim is derived from
// the number of values supplied.
type readingMessage struct {
	Values []int16 `json:"values"`
	Unit   string  `json:"unit"`
	Scale  int8    `json:"scale"`
}

// Deps holds the dependencies required by the bridge.
type Deps struct {
	Subscriber Subscriber
	Directory  Directory

	// Repository persists registrations across restarts. Optional; nil
	// disables persistence.
	Repository saul.Repository

	Store  *Store
	Logger Logger
}

// Bridge subscribes to the announce and reading topic families and keeps
// the registry and last-value store in sync with the field.
type Bridge struct {
	sub    Subscriber
	dir    Directory
	repo   saul.Repository
	store  *Store
	logger Logger
	topics mqtt.Topics
}

// NewBridge creates a bridge over the given registry and store.
func NewBridge(deps Deps) (*Bridge, error) {
	if deps.Subscriber == nil {
		return nil, fmt.Errorf("subscriber is required")
	}
	if deps.Directory == nil {
		return nil, fmt.Errorf("directory is required")
	}
	if deps.Store == nil {
		return nil, fmt.Errorf("store is required")
	}

	logger := deps.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	return &Bridge{
		sub:    deps.Subscriber,
		dir:    deps.Directory,
		repo:   deps.Repository,
		store:  deps.Store,
		logger: logger,
	}, nil
}

// Start subscribes to both topic families. The client restores these
// subscriptions itself after a reconnect.
func (b *Bridge) Start() error {
	if err := b.sub.Subscribe(b.topics.AllAnnouncements(), subscribeQoS, b.handleAnnounce); err != nil {
		return fmt.Errorf("subscribing to announcements: %w", err)
	}
	if err := b.sub.Subscribe(b.topics.AllReadings(), subscribeQoS, b.handleReading); err != nil {
		return fmt.Errorf("subscribing to readings: %w", err)
	}
	b.logger.Info("field bridge started",
		"announce", b.topics.AllAnnouncements(),
		"readings", b.topics.AllReadings(),
	)
	return nil
}

// handleAnnounce processes one attach/detach message.
func (b *Bridge) handleAnnounce(topic string, payload []byte) error {
	name, ok := mqtt.DeviceNameFromTopic(topic)
	if !ok {
		return fmt.Errorf("announce topic %q has no device name", topic)
	}

	var ann announcement
	if err := json.Unmarshal(payload, &ann); err != nil {
		return fmt.Errorf("parsing announcement for %q: %w", name, err)
	}

	switch ann.Status {
	case statusOnline:
		return b.attach(name, ann.Category)
	case statusOffline:
		return b.detach(name)
	default:
		return fmt.Errorf("announcement for %q has unknown status %q", name, ann.Status)
	}
}

// attach registers an announced device with a store-backed driver and
// persists its record.
func (b *Bridge) attach(name, categoryName string) error {
	category, ok := saul.CategoryFromName(categoryName)
	if !ok {
		return fmt.Errorf("announcement for %q names unknown category %q", name, categoryName)
	}

	dev := &saul.Device{
		Name:     name,
		Category: category,
		Driver:   NewStoreReader(b.store, name),
	}

	if err := b.dir.Register(dev); err != nil {
		// Re-announcement after a device reboot is routine.
		if errors.Is(err, saul.ErrDeviceExists) {
			b.logger.Debug("device re-announced", "name", name)
			return nil
		}
		return fmt.Errorf("registering %q: %w", name, err)
	}

	b.persist(name, category)
	b.logger.Info("field device attached", "name", name, "category", category.String())
	return nil
}

// detach deregisters a device and drops its persisted record and stored
// reading. A detach for an unknown device is routine after a restart that
// raced an offline LWT.
func (b *Bridge) detach(name string) error {
	if err := b.dir.Deregister(name); err != nil {
		if errors.Is(err, saul.ErrDeviceNotFound) {
			b.logger.Debug("detach for unknown device", "name", name)
			return nil
		}
		return fmt.Errorf("deregistering %q: %w", name, err)
	}

	b.store.Delete(name)

	if b.repo != nil {
		if err := b.repo.DeleteByName(context.Background(), name); err != nil &&
			!errors.Is(err, saul.ErrDeviceNotFound) {
			b.logger.Warn("removing device record failed", "name", name, "error", err)
		}
	}

	b.logger.Info("field device detached", "name", name)
	return nil
}

// persist stores the device record so the node re-registers it on restart.
// Persistence failures are logged, never fatal: the live registration stands.
func (b *Bridge) persist(name string, category saul.Category) {
	if b.repo == nil {
		return
	}

	rec := &saul.Record{
		Name:       name,
		Category:   category,
		DriverKind: DriverKindMQTT,
		DriverConfig: map[string]any{
			"topic": b.topics.DeviceReading(name),
		},
	}
	if err := b.repo.Create(context.Background(), rec); err != nil {
		if errors.Is(err, saul.ErrDeviceExists) {
			return
		}
		b.logger.Warn("persisting device record failed", "name", name, "error", err)
	}
}

// handleReading processes one reading update.
func (b *Bridge) handleReading(topic string, payload []byte) error {
	name, ok := mqtt.DeviceNameFromTopic(topic)
	if !ok {
		return fmt.Errorf("reading topic %q has no device name", topic)
	}

	var msg readingMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return fmt.Errorf("parsing reading for %q: %w", name, err)
	}
	if len(msg.Values) == 0 {
		return fmt.Errorf("reading for %q carries no values", name)
	}

	reading := saul.Reading{Unit: saul.Unit(msg.Unit), Scale: msg.Scale}
	for i, v := range msg.Values {
		if i >= saul.ChannelCount {
			break
		}
		reading.Values[i] = v
		reading.Dim++
	}

	b.store.Set(name, reading)
	b.logger.Debug("reading stored", "name", name, "dim", reading.Dim)
	return nil
}
