package saul

import "math"

// ChannelCount is the fixed number of value channels in a Reading.
// Multi-axis sensors (accelerometers, gyros) fill all three; most devices
// use only channel 0.
const ChannelCount = 3

// Unit identifies the physical unit of a reading's values.
type Unit string

// Units used by the defined categories.
const (
	UnitNone        Unit = ""
	UnitBool        Unit = "bool"
	UnitCelsius     Unit = "C"
	UnitPercent     Unit = "%"
	UnitPascal      Unit = "Pa"
	UnitHectopascal Unit = "hPa"
	UnitVolt        Unit = "V"
	UnitAmpere      Unit = "A"
	UnitWatt        Unit = "W"
	UnitLux         Unit = "lx"
	UnitMeter       Unit = "m"
	UnitGForce      Unit = "g"
	UnitDegree      Unit = "deg"
	UnitPPM         Unit = "ppm"
	UnitPPB         Unit = "ppb"
	UnitCount       Unit = "#"
)

// Reading is a single measurement produced by a device driver.
//
// Values are scaled integers: the physical value of channel i is
// Values[i] * 10^Scale in the given Unit. Dim is the number of valid
// channels; a Dim of zero or less means the driver produced no data.
type Reading struct {
	Values [ChannelCount]int16 `json:"values"`
	Dim    int                 `json:"dim"`
	Unit   Unit                `json:"unit"`
	Scale  int8                `json:"scale"`
}

// Float returns channel i as a float in the reading's unit, applying the
// scale exponent. Channels outside [0, Dim) return 0.
func (r Reading) Float(i int) float64 {
	if i < 0 || i >= r.Dim || i >= ChannelCount {
		return 0
	}
	return float64(r.Values[i]) * math.Pow10(int(r.Scale))
}

// Reader is the driver interface a device's current value is read through.
//
// Implementations must be safe for concurrent use: the protocol layer may
// read a device while a bridge is updating it.
type Reader interface {
	Read() (Reading, error)
}

// StaticReader is a Reader that always returns a fixed reading.
// Used for seed devices in demo and bench installs, and in tests.
type StaticReader struct {
	reading Reading
}

// NewStaticReader builds a StaticReader from up to ChannelCount values.
// Dim is the number of values supplied.
func NewStaticReader(values []int16, unit Unit, scale int8) *StaticReader {
	r := Reading{Unit: unit, Scale: scale}
	for i, v := range values {
		if i >= ChannelCount {
			break
		}
		r.Values[i] = v
		r.Dim++
	}
	return &StaticReader{reading: r}
}

// Read returns the fixed reading.
func (s *StaticReader) Read() (Reading, error) {
	return s.reading, nil
}
