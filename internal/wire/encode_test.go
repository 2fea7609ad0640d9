package wire

import (
	"bytes"
	"errors"
	"testing"
)

// canaryBuf returns a buffer pre-filled with a sentinel byte so overflow
// tests can assert nothing was written.
func canaryBuf(size int) []byte {
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = 0xAA
	}
	return buf
}

func TestEncodeInt(t *testing.T) {
	tests := []struct {
		name string
		v    int64
		size int
		want string
	}{
		{"zero", 0, 8, "0"},
		{"positive", 2150, 8, "2150"},
		{"negative", -12, 8, "-12"},
		{"exact fit", 12345, 5, "12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, tt.size)
			n, err := EncodeInt(buf, tt.v)
			if err != nil {
				t.Fatalf("EncodeInt(%d) error = %v", tt.v, err)
			}
			if got := string(buf[:n]); got != tt.want {
				t.Errorf("EncodeInt(%d) wrote %q, want %q", tt.v, got, tt.want)
			}
		})
	}

	t.Run("overflow leaves buffer untouched", func(t *testing.T) {
		buf := canaryBuf(3)
		n, err := EncodeInt(buf, 12345)
		if !errors.Is(err, ErrBufferTooSmall) {
			t.Fatalf("EncodeInt() error = %v, want ErrBufferTooSmall", err)
		}
		if n != 0 {
			t.Errorf("EncodeInt() n = %d, want 0", n)
		}
		if !bytes.Equal(buf, canaryBuf(3)) {
			t.Errorf("buffer modified on overflow: %v", buf)
		}
	})
}

func TestEncodeString(t *testing.T) {
	t.Run("fits", func(t *testing.T) {
		buf := make([]byte, 32)
		n, err := EncodeString(buf, "device not found")
		if err != nil {
			t.Fatalf("EncodeString() error = %v", err)
		}
		if got := string(buf[:n]); got != "device not found" {
			t.Errorf("EncodeString() wrote %q", got)
		}
	})

	t.Run("exact fit", func(t *testing.T) {
		buf := make([]byte, 2)
		n, err := EncodeString(buf, "ok")
		if err != nil {
			t.Fatalf("EncodeString() error = %v", err)
		}
		if n != 2 {
			t.Errorf("EncodeString() n = %d, want 2", n)
		}
	})

	t.Run("empty string", func(t *testing.T) {
		n, err := EncodeString(make([]byte, 4), "")
		if err != nil || n != 0 {
			t.Errorf("EncodeString(\"\") = (%d, %v), want (0, nil)", n, err)
		}
	})

	t.Run("overflow leaves buffer untouched", func(t *testing.T) {
		buf := canaryBuf(4)
		n, err := EncodeString(buf, "too long")
		if !errors.Is(err, ErrBufferTooSmall) {
			t.Fatalf("EncodeString() error = %v, want ErrBufferTooSmall", err)
		}
		if n != 0 {
			t.Errorf("EncodeString() n = %d, want 0", n)
		}
		if !bytes.Equal(buf, canaryBuf(4)) {
			t.Errorf("buffer modified on overflow: %v", buf)
		}
	})
}

func TestEncodeDeviceLine(t *testing.T) {
	t.Run("full line", func(t *testing.T) {
		buf := make([]byte, 64)
		n, err := EncodeDeviceLine(buf, 3, "SENSE_TEMP", "tmp_0")
		if err != nil {
			t.Fatalf("EncodeDeviceLine() error = %v", err)
		}
		want := "3,SENSE_TEMP,tmp_0\n"
		if got := string(buf[:n]); got != want {
			t.Errorf("EncodeDeviceLine() wrote %q, want %q", got, want)
		}
	})

	t.Run("multi digit index", func(t *testing.T) {
		buf := make([]byte, 64)
		n, err := EncodeDeviceLine(buf, 12345, "ACT_SERVO", "servo_left")
		if err != nil {
			t.Fatalf("EncodeDeviceLine() error = %v", err)
		}
		want := "12345,ACT_SERVO,servo_left\n"
		if got := string(buf[:n]); got != want {
			t.Errorf("EncodeDeviceLine() wrote %q, want %q", got, want)
		}
	})

	t.Run("exact fit", func(t *testing.T) {
		line := "0,SENSE_HUM,hum_0\n"
		buf := make([]byte, len(line))
		n, err := EncodeDeviceLine(buf, 0, "SENSE_HUM", "hum_0")
		if err != nil {
			t.Fatalf("EncodeDeviceLine() error = %v", err)
		}
		if n != len(line) {
			t.Errorf("EncodeDeviceLine() n = %d, want %d", n, len(line))
		}
	})

	t.Run("one byte short leaves buffer untouched", func(t *testing.T) {
		line := "0,SENSE_HUM,hum_0\n"
		buf := canaryBuf(len(line) - 1)
		n, err := EncodeDeviceLine(buf, 0, "SENSE_HUM", "hum_0")
		if !errors.Is(err, ErrBufferTooSmall) {
			t.Fatalf("EncodeDeviceLine() error = %v, want ErrBufferTooSmall", err)
		}
		if n != 0 {
			t.Errorf("EncodeDeviceLine() n = %d, want 0", n)
		}
		if !bytes.Equal(buf, canaryBuf(len(line)-1)) {
			t.Errorf("buffer modified on overflow: %v", buf)
		}
	})
}
