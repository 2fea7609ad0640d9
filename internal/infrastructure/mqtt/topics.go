package mqtt

import "fmt"

// Topic prefixes for the SenseLink MQTT namespace.
//
// Device traffic uses the flat scheme: senselink/{kind}/{device_name}
// where kind is "announce" or "reading".
const (
	// TopicPrefix is the base for all SenseLink topics.
	TopicPrefix = "senselink"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "senselink/system"
)

// Topics provides builders for SenseLink MQTT topics.
// Using these helpers ensures consistent topic naming across the codebase.
//
//	topics := mqtt.Topics{}
//	readingTopic := topics.DeviceReading("tmp_0")
//	// Returns: "senselink/reading/tmp_0"
type Topics struct{}

// DeviceAnnounce returns the topic a device publishes its registration
// (or deregistration) on.
//
// Example: senselink/announce/tmp_0
func (Topics) DeviceAnnounce(name string) string {
	return fmt.Sprintf("%s/announce/%s", TopicPrefix, name)
}

// DeviceReading returns the topic a device publishes readings on.
//
// Example: senselink/reading/tmp_0
func (Topics) DeviceReading(name string) string {
	return fmt.Sprintf("%s/reading/%s", TopicPrefix, name)
}

// SystemStatus returns the node status topic.
//
// Example: senselink/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}

// AllAnnouncements returns a pattern matching every device announcement.
//
// Pattern: senselink/announce/+
func (Topics) AllAnnouncements() string {
	return fmt.Sprintf("%s/announce/+", TopicPrefix)
}

// AllReadings returns a pattern matching every device reading.
//
// Pattern: senselink/reading/+
func (Topics) AllReadings() string {
	return fmt.Sprintf("%s/reading/+", TopicPrefix)
}

// AllTopics returns a pattern matching all SenseLink topics.
// Use with caution - this receives ALL traffic.
//
// Pattern: senselink/#
func (Topics) AllTopics() string {
	return "senselink/#"
}

// DeviceNameFromTopic extracts the device name from an announce or reading
// topic. Returns false if the topic does not follow the flat device scheme.
func DeviceNameFromTopic(topic string) (string, bool) {
	const prefixLen = len(TopicPrefix) + 1
	if len(topic) <= prefixLen || topic[:prefixLen] != TopicPrefix+"/" {
		return "", false
	}
	rest := topic[prefixLen:]
	for i := 0; i < len(rest); i++ {
		if rest[i] == '/' {
			kind := rest[:i]
			name := rest[i+1:]
			if (kind == "announce" || kind == "reading") && name != "" {
				return name, true
			}
			return "", false
		}
	}
	return "", false
}
