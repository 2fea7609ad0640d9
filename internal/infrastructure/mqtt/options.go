package mqtt

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/senselink/senselink-core/internal/infrastructure/config"
)

// Connection tuning.
const (
	// connectTimeout bounds the initial broker connection.
	connectTimeout = 10 * time.Second

	// opTimeout bounds publish, subscribe, and unsubscribe acknowledgment.
	opTimeout = 5 * time.Second

	// disconnectQuiesceMS is the grace period for in-flight operations on
	// Close, in milliseconds (the unit the paho API takes).
	disconnectQuiesceMS = 1000

	// keepAlive is the PING interval for dead-connection detection.
	keepAlive = 60 * time.Second

	// maxQoS is the highest valid MQTT QoS level.
	maxQoS = 2

	tlsMinVersion = tls.VersionTLS12
)

// buildClientOptions maps broker config onto paho client options: broker
// URL (tcp or ssl), client identity, credentials, clean session, and
// auto-reconnect with the configured backoff window.
func buildClientOptions(cfg config.MQTTConfig) *pahomqtt.ClientOptions {
	opts := pahomqtt.NewClientOptions()

	scheme := "tcp"
	if cfg.Broker.TLS {
		scheme = "ssl"
		opts.SetTLSConfig(&tls.Config{MinVersion: tlsMinVersion})
	}
	opts.AddBroker(fmt.Sprintf("%s://%s:%d", scheme, cfg.Broker.Host, cfg.Broker.Port))

	opts.SetClientID(cfg.Broker.ClientID)
	if cfg.Auth.Username != "" {
		opts.SetUsername(cfg.Auth.Username)
		opts.SetPassword(cfg.Auth.Password)
	}

	// No persistent broker session; subscriptions are restored client-side.
	opts.SetCleanSession(true)

	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(time.Duration(cfg.Reconnect.InitialDelay) * time.Second)
	opts.SetMaxReconnectInterval(time.Duration(cfg.Reconnect.MaxDelay) * time.Second)

	opts.SetConnectTimeout(connectTimeout)
	opts.SetKeepAlive(keepAlive)

	return opts
}

// statusMessage is the node lifecycle payload published to the system
// status topic, by the client on connect/close and by the broker as LWT.
type statusMessage struct {
	Status    string `json:"status"`
	ClientID  string `json:"client_id"`
	Reason    string `json:"reason,omitempty"`
	Timestamp string `json:"timestamp"`
}

func (m statusMessage) encode() string {
	m.Timestamp = time.Now().UTC().Format(time.RFC3339)
	data, err := json.Marshal(m)
	if err != nil {
		// statusMessage has no unmarshalable fields; unreachable.
		return `{"status":"unknown"}`
	}
	return string(data)
}

// configureLWT registers the Last Will: the broker publishes an offline
// status (retained, QoS 1) if this client drops without a clean disconnect.
func configureLWT(opts *pahomqtt.ClientOptions, clientID string) {
	will := statusMessage{
		Status:   "offline",
		ClientID: clientID,
		Reason:   "unexpected_disconnect",
	}
	opts.SetWill(Topics{}.SystemStatus(), will.encode(), 1, true)
}

// buildOnlinePayload is the status published after each (re)connect.
func buildOnlinePayload(clientID string) string {
	return statusMessage{Status: "online", ClientID: clientID}.encode()
}

// buildOfflinePayload is the status published on graceful shutdown,
// distinguishable from the LWT by its reason.
func buildOfflinePayload(clientID string) string {
	return statusMessage{
		Status:   "offline",
		ClientID: clientID,
		Reason:   "graceful_shutdown",
	}.encode()
}
