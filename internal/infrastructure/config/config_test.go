package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	// Create a temporary config file
	content := `
node:
  id: "test-node"
database:
  path: "/tmp/test.db"
  wal_mode: true
  busy_timeout: 5
mqtt:
  broker:
    host: "localhost"
    port: 1883
    client_id: "test-client"
  qos: 1
api:
  host: "0.0.0.0"
  port: 8080
  reply_buffer_size: 128
registry:
  seed_devices:
    - name: "tmp_0"
      category: "SENSE_TEMP"
      values: [2150]
      unit: "C"
      scale: -2
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Node.ID != "test-node" {
		t.Errorf("Node.ID = %q, want %q", cfg.Node.ID, "test-node")
	}

	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "/tmp/test.db")
	}

	if cfg.MQTT.Broker.Host != "localhost" {
		t.Errorf("MQTT.Broker.Host = %q, want %q", cfg.MQTT.Broker.Host, "localhost")
	}

	if len(cfg.Registry.SeedDevices) != 1 {
		t.Fatalf("len(Registry.SeedDevices) = %d, want 1", len(cfg.Registry.SeedDevices))
	}
	seed := cfg.Registry.SeedDevices[0]
	if seed.Name != "tmp_0" || seed.Category != "SENSE_TEMP" {
		t.Errorf("seed device = %+v, want tmp_0/SENSE_TEMP", seed)
	}
	if len(seed.Values) != 1 || seed.Values[0] != 2150 {
		t.Errorf("seed values = %v, want [2150]", seed.Values)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("invalid: [yaml: content"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	content := `
node:
  id: ""
database:
  path: "/tmp/test.db"
api:
  port: 8080
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected validation error for empty node.id, got nil")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: &Config{
				Node: NodeConfig{ID: "node-001"},
				Database: DatabaseConfig{
					Path: "/data/senselink.db",
				},
				MQTT: MQTTConfig{
					QoS: 1,
				},
				API: APIConfig{
					Port:            8080,
					ReplyBufferSize: 128,
				},
			},
			wantErr: false,
		},
		{
			name: "missing node ID",
			config: &Config{
				Node:     NodeConfig{ID: ""},
				Database: DatabaseConfig{Path: "/data/senselink.db"},
				API:      APIConfig{Port: 8080, ReplyBufferSize: 128},
			},
			wantErr: true,
		},
		{
			name: "missing database path",
			config: &Config{
				Node:     NodeConfig{ID: "node-001"},
				Database: DatabaseConfig{Path: ""},
				API:      APIConfig{Port: 8080, ReplyBufferSize: 128},
			},
			wantErr: true,
		},
		{
			name: "invalid QoS",
			config: &Config{
				Node:     NodeConfig{ID: "node-001"},
				Database: DatabaseConfig{Path: "/data/senselink.db"},
				MQTT:     MQTTConfig{QoS: 3},
				API:      APIConfig{Port: 8080, ReplyBufferSize: 128},
			},
			wantErr: true,
		},
		{
			name: "invalid port low",
			config: &Config{
				Node:     NodeConfig{ID: "node-001"},
				Database: DatabaseConfig{Path: "/data/senselink.db"},
				MQTT:     MQTTConfig{QoS: 1},
				API:      APIConfig{Port: 0, ReplyBufferSize: 128},
			},
			wantErr: true,
		},
		{
			name: "invalid port high",
			config: &Config{
				Node:     NodeConfig{ID: "node-001"},
				Database: DatabaseConfig{Path: "/data/senselink.db"},
				MQTT:     MQTTConfig{QoS: 1},
				API:      APIConfig{Port: 70000, ReplyBufferSize: 128},
			},
			wantErr: true,
		},
		{
			name: "reply buffer too small",
			config: &Config{
				Node:     NodeConfig{ID: "node-001"},
				Database: DatabaseConfig{Path: "/data/senselink.db"},
				MQTT:     MQTTConfig{QoS: 1},
				API:      APIConfig{Port: 8080, ReplyBufferSize: 8},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_GetTimeouts(t *testing.T) {
	cfg := &Config{
		API: APIConfig{
			Timeouts: APITimeoutConfig{
				Read:  30,
				Write: 45,
				Idle:  60,
			},
		},
	}

	if got := cfg.GetReadTimeout().Seconds(); got != 30 {
		t.Errorf("GetReadTimeout() = %v, want 30", got)
	}

	if got := cfg.GetWriteTimeout().Seconds(); got != 45 {
		t.Errorf("GetWriteTimeout() = %v, want 45", got)
	}

	if got := cfg.GetIdleTimeout().Seconds(); got != 60 {
		t.Errorf("GetIdleTimeout() = %v, want 60", got)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := defaultConfig()

	// Set environment variables
	t.Setenv("SENSELINK_DATABASE_PATH", "/custom/path.db")
	t.Setenv("SENSELINK_MQTT_HOST", "mqtt.example.com")
	t.Setenv("SENSELINK_MQTT_USERNAME", "testuser")
	t.Setenv("SENSELINK_MQTT_PASSWORD", "testpass")
	t.Setenv("SENSELINK_API_HOST", "192.168.1.1")
	t.Setenv("SENSELINK_INFLUXDB_TOKEN", "secret-token")

	applyEnvOverrides(cfg)

	if cfg.Database.Path != "/custom/path.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "/custom/path.db")
	}

	if cfg.MQTT.Broker.Host != "mqtt.example.com" {
		t.Errorf("MQTT.Broker.Host = %q, want %q", cfg.MQTT.Broker.Host, "mqtt.example.com")
	}

	if cfg.MQTT.Auth.Username != "testuser" {
		t.Errorf("MQTT.Auth.Username = %q, want %q", cfg.MQTT.Auth.Username, "testuser")
	}

	if cfg.MQTT.Auth.Password != "testpass" {
		t.Errorf("MQTT.Auth.Password = %q, want %q", cfg.MQTT.Auth.Password, "testpass")
	}

	if cfg.API.Host != "192.168.1.1" {
		t.Errorf("API.Host = %q, want %q", cfg.API.Host, "192.168.1.1")
	}

	if cfg.InfluxDB.Token != "secret-token" {
		t.Errorf("InfluxDB.Token = %q, want %q", cfg.InfluxDB.Token, "secret-token")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Node.ID == "" {
		t.Error("defaultConfig should have non-empty Node.ID")
	}

	if cfg.Database.Path == "" {
		t.Error("defaultConfig should have non-empty Database.Path")
	}

	if cfg.MQTT.Broker.Port != 1883 {
		t.Errorf("defaultConfig MQTT.Broker.Port = %d, want 1883", cfg.MQTT.Broker.Port)
	}

	if cfg.API.Port != 8080 {
		t.Errorf("defaultConfig API.Port = %d, want 8080", cfg.API.Port)
	}

	if cfg.API.ReplyBufferSize != 128 {
		t.Errorf("defaultConfig API.ReplyBufferSize = %d, want 128", cfg.API.ReplyBufferSize)
	}
}
