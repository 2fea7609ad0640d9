package saul

// Category classifies a device as a specific kind of sensor or actuator.
//
// Codes are stable wire values: actuator categories live in the 0x40 block,
// sensor categories in the 0x80 block. The code is what travels in a
// read-by-category request; the display name is what appears in lookup
// responses.
type Category uint8

// CategoryUndefined is the zero value and is never a valid registration.
const CategoryUndefined Category = 0x00

// Actuator categories.
const (
	ActAny    Category = 0x40
	ActLEDRGB Category = 0x41
	ActServo  Category = 0x42
	ActMotor  Category = 0x43
	ActSwitch Category = 0x44
	ActDimmer Category = 0x45
)

// Sensor categories.
const (
	SenseAny      Category = 0x80
	SenseBtn      Category = 0x81
	SenseTemp     Category = 0x82
	SenseHum      Category = 0x83
	SenseLight    Category = 0x84
	SenseAccel    Category = 0x85
	SenseMag      Category = 0x86
	SenseGyro     Category = 0x87
	SenseColor    Category = 0x88
	SensePress    Category = 0x89
	SenseAnalog   Category = 0x8A
	SenseUV       Category = 0x8B
	SenseObjTemp  Category = 0x8C
	SenseCount    Category = 0x8D
	SenseDistance Category = 0x8E
	SenseCO2      Category = 0x8F
	SenseTVOC     Category = 0x90
	SenseVoltage  Category = 0x91
	SenseCurrent  Category = 0x92
	SensePower    Category = 0x93
)

// categoryNames maps every defined category to its canonical display name.
// The mapping is total and injective over the defined categories; codes
// outside it have no name and are rejected wherever a name is required.
var categoryNames = map[Category]string{
	ActAny:        "ACT_ANY",
	ActLEDRGB:     "ACT_LED_RGB",
	ActServo:      "ACT_SERVO",
	ActMotor:      "ACT_MOTOR",
	ActSwitch:     "ACT_SWITCH",
	ActDimmer:     "ACT_DIMMER",
	SenseAny:      "SENSE_ANY",
	SenseBtn:      "SENSE_BTN",
	SenseTemp:     "SENSE_TEMP",
	SenseHum:      "SENSE_HUM",
	SenseLight:    "SENSE_LIGHT",
	SenseAccel:    "SENSE_ACCEL",
	SenseMag:      "SENSE_MAG",
	SenseGyro:     "SENSE_GYRO",
	SenseColor:    "SENSE_COLOR",
	SensePress:    "SENSE_PRESS",
	SenseAnalog:   "SENSE_ANALOG",
	SenseUV:       "SENSE_UV",
	SenseObjTemp:  "SENSE_OBJTEMP",
	SenseCount:    "SENSE_COUNT",
	SenseDistance: "SENSE_DISTANCE",
	SenseCO2:      "SENSE_CO2",
	SenseTVOC:     "SENSE_TVOC",
	SenseVoltage:  "SENSE_VOLTAGE",
	SenseCurrent:  "SENSE_CURRENT",
	SensePower:    "SENSE_POWER",
}

// categoryCodes is the reverse of categoryNames, built once at init.
var categoryCodes = func() map[string]Category {
	codes := make(map[string]Category, len(categoryNames))
	for c, name := range categoryNames {
		codes[name] = c
	}
	return codes
}()

// CategoryName returns the display name for a category code.
// The second return value is false for codes outside the defined enumeration.
func CategoryName(code Category) (string, bool) {
	name, ok := categoryNames[code]
	return name, ok
}

// CategoryFromName resolves a display name back to its category code.
// Used when devices are declared by name in configuration or announcements.
func CategoryFromName(name string) (Category, bool) {
	c, ok := categoryCodes[name]
	return c, ok
}

// IsDefined reports whether the category is part of the enumeration.
func (c Category) IsDefined() bool {
	_, ok := categoryNames[c]
	return ok
}

// IsActuator reports whether the category is in the actuator block.
func (c Category) IsActuator() bool {
	return c.IsDefined() && c&0xC0 == 0x40
}

// IsSensor reports whether the category is in the sensor block.
func (c Category) IsSensor() bool {
	return c.IsDefined() && c&0x80 == 0x80
}

// String returns the display name, or "UNDEF" for codes outside the enumeration.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "UNDEF"
}

// AllCategories returns every defined category, actuators first, in code order.
func AllCategories() []Category {
	return []Category{
		ActAny, ActLEDRGB, ActServo, ActMotor, ActSwitch, ActDimmer,
		SenseAny, SenseBtn, SenseTemp, SenseHum, SenseLight, SenseAccel,
		SenseMag, SenseGyro, SenseColor, SensePress, SenseAnalog, SenseUV,
		SenseObjTemp, SenseCount, SenseDistance, SenseCO2, SenseTVOC,
		SenseVoltage, SenseCurrent, SensePower,
	}
}
