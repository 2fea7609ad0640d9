// SenseLink Core - Sensor/Actuator Registry Node
//
// This is the main entry point for the SenseLink Core application: a
// dynamically-populated device registry exposed over a compact
// request/response protocol, fed by field devices on an MQTT bus.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/senselink/senselink-core/migrations"

	"github.com/senselink/senselink-core/internal/endpoint"
	"github.com/senselink/senselink-core/internal/gateway"
	"github.com/senselink/senselink-core/internal/infrastructure/config"
	"github.com/senselink/senselink-core/internal/infrastructure/database"
	"github.com/senselink/senselink-core/internal/infrastructure/influxdb"
	"github.com/senselink/senselink-core/internal/infrastructure/logging"
	"github.com/senselink/senselink-core/internal/infrastructure/mqtt"
	"github.com/senselink/senselink-core/internal/ingest"
	"github.com/senselink/senselink-core/internal/saul"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

// registrySizeInterval is how often the current device count is written to
// the telemetry store.
const registrySizeInterval = time.Minute

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting SenseLink Core",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Open database
	db, err := database.Open(database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}
	log.Info("database migrations complete")

	// Device registry and last-value store
	repo := saul.NewSQLiteRepository(db.DB)
	registry := saul.NewRegistry()
	registry.SetLogger(log)
	store := ingest.NewStore()

	if seedErr := seedDevices(registry, cfg.Registry.SeedDevices, log); seedErr != nil {
		return fmt.Errorf("seeding devices: %w", seedErr)
	}

	if restoreErr := restoreDevices(ctx, registry, repo, store, log); restoreErr != nil {
		return fmt.Errorf("restoring devices: %w", restoreErr)
	}
	log.Info("device registry initialised", "devices", registry.Count())

	// Connect to MQTT broker
	mqttClient, err := mqtt.Connect(cfg.MQTT)
	if err != nil {
		return fmt.Errorf("connecting to MQTT: %w", err)
	}
	defer func() {
		log.Info("disconnecting from MQTT")
		if closeErr := mqttClient.Close(); closeErr != nil {
			log.Error("error closing MQTT", "error", closeErr)
		}
	}()
	log.Info("MQTT connected",
		"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
		"client_id", cfg.MQTT.Broker.ClientID,
	)
	mqttClient.SetLogger(log)
	mqttClient.SetOnConnect(func() {
		log.Info("MQTT reconnected")
	})
	mqttClient.SetOnDisconnect(func(err error) {
		log.Warn("MQTT disconnected", "error", err)
	})

	// Field bridge: announcements and readings from the bus
	bridge, err := ingest.NewBridge(ingest.Deps{
		Subscriber: mqttClient,
		Directory:  registry,
		Repository: repo,
		Store:      store,
		Logger:     log,
	})
	if err != nil {
		return fmt.Errorf("creating field bridge: %w", err)
	}
	if bridgeErr := bridge.Start(); bridgeErr != nil {
		return fmt.Errorf("starting field bridge: %w", bridgeErr)
	}

	// Connect to InfluxDB (optional)
	var influxClient *influxdb.Client
	if cfg.InfluxDB.Enabled {
		influxClient, err = influxdb.Connect(cfg.InfluxDB)
		if err != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", err)
		}
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		log.Info("InfluxDB connected",
			"url", cfg.InfluxDB.URL,
			"org", cfg.InfluxDB.Org,
			"bucket", cfg.InfluxDB.Bucket,
		)
		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
	} else {
		log.Info("InfluxDB disabled")
	}

	// Request dispatcher over the registry
	dispatcher := endpoint.NewDispatcher(registry)
	dispatcher.SetLogger(log)
	if influxClient != nil {
		dispatcher.SetRecorder(&readRecorder{influx: influxClient})
		go recordRegistrySize(ctx, influxClient, registry, cfg.Node.ID)
	}

	// HTTP gateway
	gw, err := gateway.New(gateway.Deps{
		Config:     cfg.API,
		Logger:     log,
		Dispatcher: dispatcher,
		Version:    version,
	})
	if err != nil {
		return fmt.Errorf("creating gateway: %w", err)
	}
	if startErr := gw.Start(ctx); startErr != nil {
		return fmt.Errorf("starting gateway: %w", startErr)
	}
	defer func() {
		log.Info("stopping gateway")
		if closeErr := gw.Close(); closeErr != nil {
			log.Error("error closing gateway", "error", closeErr)
		}
	}()

	// Verify all connections are healthy
	if err := healthCheck(ctx, db, mqttClient, influxClient, gw); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Info("all health checks passed")

	log.Info("initialisation complete, waiting for shutdown signal")
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")
	log.Info("SenseLink Core stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses SENSELINK_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("SENSELINK_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// seedDevices registers the fixed-reading devices declared in config.
func seedDevices(registry *saul.Registry, seeds []config.SeedDeviceConfig, log *logging.Logger) error {
	for _, seed := range seeds {
		category, ok := saul.CategoryFromName(seed.Category)
		if !ok {
			return fmt.Errorf("seed device %q has unknown category %q", seed.Name, seed.Category)
		}

		dev := &saul.Device{
			Name:     seed.Name,
			Category: category,
			Driver:   saul.NewStaticReader(seed.Values, saul.Unit(seed.Unit), seed.Scale),
		}
		if err := registry.Register(dev); err != nil {
			return fmt.Errorf("registering seed device %q: %w", seed.Name, err)
		}
		log.Info("seed device registered", "name", seed.Name, "category", seed.Category)
	}
	return nil
}

// restoreDevices re-registers persisted device records from previous runs.
// Records that collide with a seed device or carry an unknown driver kind
// are skipped with a warning rather than failing startup.
func restoreDevices(ctx context.Context, registry *saul.Registry, repo saul.Repository, store *ingest.Store, log *logging.Logger) error {
	records, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("listing device records: %w", err)
	}

	for _, rec := range records {
		driver, buildErr := buildDriver(rec, store)
		if buildErr != nil {
			log.Warn("skipping device record", "name", rec.Name, "error", buildErr)
			continue
		}

		dev := &saul.Device{Name: rec.Name, Category: rec.Category, Driver: driver}
		if regErr := registry.Register(dev); regErr != nil {
			log.Warn("skipping device record", "name", rec.Name, "error", regErr)
			continue
		}
		log.Info("device restored", "name", rec.Name, "category", rec.Category.String())
	}
	return nil
}

// buildDriver rebuilds a device driver from its persisted record.
func buildDriver(rec saul.Record, store *ingest.Store) (saul.Reader, error) {
	switch rec.DriverKind {
	case ingest.DriverKindMQTT:
		return ingest.NewStoreReader(store, rec.Name), nil
	case "static":
		return buildStaticDriver(rec)
	default:
		return nil, fmt.Errorf("unknown driver kind %q", rec.DriverKind)
	}
}

// buildStaticDriver rebuilds a fixed-reading driver from record config.
// JSON numbers arrive as float64; values outside int16 range are rejected.
func buildStaticDriver(rec saul.Record) (saul.Reader, error) {
	rawValues, _ := rec.DriverConfig["values"].([]any)
	values := make([]int16, 0, len(rawValues))
	for _, raw := range rawValues {
		f, ok := raw.(float64)
		if !ok || f != float64(int16(f)) {
			return nil, fmt.Errorf("static driver config has bad value %v", raw)
		}
		values = append(values, int16(f))
	}

	unit, _ := rec.DriverConfig["unit"].(string)
	scale, _ := rec.DriverConfig["scale"].(float64)
	if scale != float64(int8(scale)) {
		return nil, fmt.Errorf("static driver config has bad scale %v", scale)
	}
	return saul.NewStaticReader(values, saul.Unit(unit), int8(scale)), nil
}

// readRecorder forwards successful category reads to InfluxDB.
type readRecorder struct {
	influx *influxdb.Client
}

// RecordRead writes the channel-0 value of a reading. Non-blocking; the
// influx client batches internally.
func (r *readRecorder) RecordRead(device string, category saul.Category, reading saul.Reading) {
	r.influx.WriteReading(device, category.String(), reading.Float(0), int64(reading.Values[0]))
}

// recordRegistrySize periodically writes the device count until the context
// is cancelled.
func recordRegistrySize(ctx context.Context, influx *influxdb.Client, registry *saul.Registry, nodeID string) {
	ticker := time.NewTicker(registrySizeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			influx.WriteRegistrySize(nodeID, registry.Count())
		}
	}
}

// healthCheck verifies all infrastructure connections are healthy.
func healthCheck(ctx context.Context, db *database.DB, mqttClient *mqtt.Client, influxClient *influxdb.Client, gw *gateway.Server) error {
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := mqttClient.HealthCheck(ctx); err != nil {
		return fmt.Errorf("mqtt: %w", err)
	}
	if influxClient != nil {
		if err := influxClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("influxdb: %w", err)
		}
	}
	if err := gw.HealthCheck(ctx); err != nil {
		return fmt.Errorf("gateway: %w", err)
	}
	return nil
}
