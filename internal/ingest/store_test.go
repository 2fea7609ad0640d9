package ingest

import (
	"sync"
	"testing"

	"github.com/senselink/senselink-core/internal/saul"
)

func TestStore(t *testing.T) {
	store := NewStore()

	t.Run("get before set", func(t *testing.T) {
		r := store.Get("tmp_0")
		if r.Dim != 0 {
			t.Errorf("Get() before Set() Dim = %d, want 0", r.Dim)
		}
	})

	t.Run("set and get", func(t *testing.T) {
		want := saul.Reading{
			Values: [saul.ChannelCount]int16{2150},
			Dim:    1,
			Unit:   saul.UnitCelsius,
			Scale:  -2,
		}
		store.Set("tmp_0", want)
		if got := store.Get("tmp_0"); got != want {
			t.Errorf("Get() = %+v, want %+v", got, want)
		}
		if store.Len() != 1 {
			t.Errorf("Len() = %d, want 1", store.Len())
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		next := saul.Reading{Values: [saul.ChannelCount]int16{2200}, Dim: 1, Unit: saul.UnitCelsius, Scale: -2}
		store.Set("tmp_0", next)
		if got := store.Get("tmp_0"); got.Values[0] != 2200 {
			t.Errorf("Get() after overwrite = %d, want 2200", got.Values[0])
		}
	})

	t.Run("delete", func(t *testing.T) {
		store.Delete("tmp_0")
		if r := store.Get("tmp_0"); r.Dim != 0 {
			t.Errorf("Get() after Delete() Dim = %d, want 0", r.Dim)
		}
		if store.Len() != 0 {
			t.Errorf("Len() after Delete() = %d, want 0", store.Len())
		}
	})
}

func TestStoreReader(t *testing.T) {
	store := NewStore()
	reader := NewStoreReader(store, "hum_0")

	t.Run("no data yet", func(t *testing.T) {
		r, err := reader.Read()
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if r.Dim != 0 {
			t.Errorf("Read() Dim = %d, want 0", r.Dim)
		}
	})

	t.Run("serves last value", func(t *testing.T) {
		store.Set("hum_0", saul.Reading{
			Values: [saul.ChannelCount]int16{4520},
			Dim:    1,
			Unit:   saul.UnitPercent,
			Scale:  -2,
		})
		r, err := reader.Read()
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if r.Values[0] != 4520 || r.Unit != saul.UnitPercent {
			t.Errorf("Read() = %+v, want value 4520 unit %%", r)
		}
	})
}

func TestStoreConcurrency(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(v int16) {
			defer wg.Done()
			store.Set("tmp_0", saul.Reading{Values: [saul.ChannelCount]int16{v}, Dim: 1})
		}(int16(i))

		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Get("tmp_0")
		}()
	}
	wg.Wait()

	if r := store.Get("tmp_0"); r.Dim != 1 {
		t.Errorf("Get() after concurrent writes Dim = %d, want 1", r.Dim)
	}
}
