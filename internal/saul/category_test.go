package saul

import "testing"

func TestCategoryName(t *testing.T) {
	tests := []struct {
		code Category
		want string
		ok   bool
	}{
		{ActAny, "ACT_ANY", true},
		{ActServo, "ACT_SERVO", true},
		{SenseAny, "SENSE_ANY", true},
		{SenseTemp, "SENSE_TEMP", true},
		{SenseHum, "SENSE_HUM", true},
		{SensePress, "SENSE_PRESS", true},
		{SenseVoltage, "SENSE_VOLTAGE", true},
		{CategoryUndefined, "", false},
		{Category(0x7F), "", false},
		{Category(0xFF), "", false},
	}

	for _, tt := range tests {
		name, ok := CategoryName(tt.code)
		if name != tt.want || ok != tt.ok {
			t.Errorf("CategoryName(%#02x) = (%q, %v), want (%q, %v)",
				uint8(tt.code), name, ok, tt.want, tt.ok)
		}
	}
}

func TestCategoryFromName(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, c := range AllCategories() {
			name, ok := CategoryName(c)
			if !ok {
				t.Fatalf("CategoryName(%#02x) not defined", uint8(c))
			}
			back, ok := CategoryFromName(name)
			if !ok || back != c {
				t.Errorf("CategoryFromName(%q) = (%#02x, %v), want (%#02x, true)",
					name, uint8(back), ok, uint8(c))
			}
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		if _, ok := CategoryFromName("SENSE_UNOBTAINIUM"); ok {
			t.Error("CategoryFromName() accepted an unknown name")
		}
	})
}

func TestCategoryClassification(t *testing.T) {
	tests := []struct {
		code       Category
		isActuator bool
		isSensor   bool
	}{
		{ActAny, true, false},
		{ActDimmer, true, false},
		{SenseAny, false, true},
		{SensePower, false, true},
		{CategoryUndefined, false, false},
		{Category(0x7F), false, false},
	}

	for _, tt := range tests {
		if got := tt.code.IsActuator(); got != tt.isActuator {
			t.Errorf("(%#02x).IsActuator() = %v, want %v", uint8(tt.code), got, tt.isActuator)
		}
		if got := tt.code.IsSensor(); got != tt.isSensor {
			t.Errorf("(%#02x).IsSensor() = %v, want %v", uint8(tt.code), got, tt.isSensor)
		}
	}
}

func TestCategoryString(t *testing.T) {
	if got := SenseTemp.String(); got != "SENSE_TEMP" {
		t.Errorf("String() = %q, want SENSE_TEMP", got)
	}
	if got := Category(0x99).String(); got != "UNDEF" {
		t.Errorf("String() = %q, want UNDEF", got)
	}
}

func TestAllCategoriesDefined(t *testing.T) {
	all := AllCategories()
	if len(all) != len(categoryNames) {
		t.Fatalf("AllCategories() returned %d entries, map has %d", len(all), len(categoryNames))
	}
	for _, c := range all {
		if !c.IsDefined() {
			t.Errorf("AllCategories() contains undefined code %#02x", uint8(c))
		}
	}
}
