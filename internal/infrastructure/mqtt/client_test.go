package mqtt

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/senselink/senselink-core/internal/infrastructure/config"
)

func TestCloseNil(t *testing.T) {
	client := &Client{}
	err := client.Close()
	if err != nil {
		t.Errorf("Close() on nil client error = %v, want nil", err)
	}
}

func TestIsConnected_InitialState(t *testing.T) {
	client := &Client{}

	if client.IsConnected() {
		t.Error("IsConnected() should be false for uninitialised client")
	}
}

func TestBuildClientOptions(t *testing.T) {
	t.Run("plain tcp broker", func(t *testing.T) {
		cfg := config.MQTTConfig{
			Broker: config.MQTTBrokerConfig{
				Host:     "broker.local",
				Port:     1883,
				ClientID: "senselink-test",
			},
			QoS: 1,
			Reconnect: config.MQTTReconnectConfig{
				InitialDelay: 1,
				MaxDelay:     5,
			},
		}

		opts := buildClientOptions(cfg)

		if len(opts.Servers) != 1 {
			t.Fatalf("expected 1 broker URL, got %d", len(opts.Servers))
		}
		if got := opts.Servers[0].String(); got != "tcp://broker.local:1883" {
			t.Errorf("broker URL = %q, want tcp://broker.local:1883", got)
		}
		if opts.ClientID != "senselink-test" {
			t.Errorf("ClientID = %q, want senselink-test", opts.ClientID)
		}
	})

	t.Run("tls broker uses ssl scheme", func(t *testing.T) {
		cfg := config.MQTTConfig{
			Broker: config.MQTTBrokerConfig{
				Host:     "broker.local",
				Port:     8883,
				ClientID: "senselink-test",
				TLS:      true,
			},
		}

		opts := buildClientOptions(cfg)

		if got := opts.Servers[0].String(); got != "ssl://broker.local:8883" {
			t.Errorf("broker URL = %q, want ssl://broker.local:8883", got)
		}
		if opts.TLSConfig == nil {
			t.Error("expected TLS config to be set")
		}
	})

	t.Run("credentials propagated", func(t *testing.T) {
		cfg := config.MQTTConfig{
			Broker: config.MQTTBrokerConfig{Host: "h", Port: 1883, ClientID: "c"},
			Auth: config.MQTTAuthConfig{
				Username: "sensor-node",
				Password: "secret",
			},
		}

		opts := buildClientOptions(cfg)

		if opts.Username != "sensor-node" {
			t.Errorf("Username = %q, want sensor-node", opts.Username)
		}
		if opts.Password != "secret" {
			t.Errorf("Password = %q, want secret", opts.Password)
		}
	})
}

func TestStatusPayloads(t *testing.T) {
	t.Run("online payload", func(t *testing.T) {
		payload := buildOnlinePayload("senselink-core")

		var parsed map[string]string
		if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
			t.Fatalf("online payload is not valid JSON: %v", err)
		}
		if parsed["status"] != "online" {
			t.Errorf("status = %q, want online", parsed["status"])
		}
		if parsed["client_id"] != "senselink-core" {
			t.Errorf("client_id = %q, want senselink-core", parsed["client_id"])
		}
	})

	t.Run("offline payload carries reason", func(t *testing.T) {
		payload := buildOfflinePayload("senselink-core")

		var parsed map[string]string
		if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
			t.Fatalf("offline payload is not valid JSON: %v", err)
		}
		if parsed["status"] != "offline" {
			t.Errorf("status = %q, want offline", parsed["status"])
		}
		if !strings.Contains(parsed["reason"], "graceful") {
			t.Errorf("reason = %q, want graceful shutdown reason", parsed["reason"])
		}
	})
}

func TestTopicBuilders(t *testing.T) {
	tests := []struct {
		name     string
		builder  func() string
		expected string
	}{
		{
			name: "DeviceAnnounce",
			builder: func() string {
				return Topics{}.DeviceAnnounce("tmp_0")
			},
			expected: "senselink/announce/tmp_0",
		},
		{
			name: "DeviceReading",
			builder: func() string {
				return Topics{}.DeviceReading("hum_0")
			},
			expected: "senselink/reading/hum_0",
		},
		{
			name: "SystemStatus",
			builder: func() string {
				return Topics{}.SystemStatus()
			},
			expected: "senselink/system/status",
		},
		{
			name: "AllAnnouncements",
			builder: func() string {
				return Topics{}.AllAnnouncements()
			},
			expected: "senselink/announce/+",
		},
		{
			name: "AllReadings",
			builder: func() string {
				return Topics{}.AllReadings()
			},
			expected: "senselink/reading/+",
		},
		{
			name: "AllTopics",
			builder: func() string {
				return Topics{}.AllTopics()
			},
			expected: "senselink/#",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.builder()
			if result != tt.expected {
				t.Errorf("%s() = %q, want %q", tt.name, result, tt.expected)
			}
		})
	}
}

func TestDeviceNameFromTopic(t *testing.T) {
	tests := []struct {
		topic    string
		wantName string
		wantOK   bool
	}{
		{"senselink/announce/tmp_0", "tmp_0", true},
		{"senselink/reading/hum_0", "hum_0", true},
		{"senselink/reading/nested/name", "nested/name", true},
		{"senselink/system/status", "", false},
		{"senselink/reading/", "", false},
		{"senselink/reading", "", false},
		{"other/reading/tmp_0", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			name, ok := DeviceNameFromTopic(tt.topic)
			if ok != tt.wantOK {
				t.Fatalf("DeviceNameFromTopic(%q) ok = %v, want %v", tt.topic, ok, tt.wantOK)
			}
			if ok && name != tt.wantName {
				t.Errorf("DeviceNameFromTopic(%q) = %q, want %q", tt.topic, name, tt.wantName)
			}
		})
	}
}
