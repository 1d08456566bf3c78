package metrics

import (
	"strings"
	"sync"
	"testing"
)

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry()
	if r.Counter("a") != r.Counter("a") {
		t.Fatal("Counter returned different instances for one name")
	}
	if r.Gauge("a") != r.Gauge("a") {
		t.Fatal("Gauge returned different instances for one name")
	}
	if r.Histogram("a") != r.Histogram("a") {
		t.Fatal("Histogram returned different instances for one name")
	}
}

func TestRegistry_ConcurrentCreate(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Counter("shared").Inc()
		}()
	}
	wg.Wait()
	if v := r.Counter("shared").Value(); v != 64 {
		t.Fatalf("shared counter = %d, want 64", v)
	}
}

func TestRegistry_Snapshot(t *testing.T) {
	r := NewRegistry()
	r.Counter("c").Add(3)
	r.Gauge("g").Set(-2)
	r.Histogram("h").Observe(5)
	snap := r.Snapshot()
	if snap.Counters["c"] != 3 || snap.Gauges["g"] != -2 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if h := snap.Histograms["h"]; h.Count != 1 || h.Sum != 5 {
		t.Fatalf("histogram snapshot = %+v", h)
	}
	r.Counter("c").Inc()
	if snap.Counters["c"] != 3 {
		t.Fatal("snapshot changed after later increment")
	}
}

func TestRegistry_WriteText(t *testing.T) {
	r := NewRegistry()
	r.Counter("ssz.decode.total").Add(2)
	r.Gauge("ssz.decode.active").Set(1)
	r.Histogram("ssz.decode.latency_us").Observe(10)
	r.Histogram("empty-hist")

	var b strings.Builder
	if err := r.WriteText(&b, "sszcodec"); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := b.String()
	for _, want := range []string{
		"# TYPE sszcodec_ssz_decode_total counter\n",
		"sszcodec_ssz_decode_total 2\n",
		"# TYPE sszcodec_ssz_decode_active gauge\n",
		"sszcodec_ssz_decode_active 1\n",
		"# TYPE sszcodec_ssz_decode_latency_us summary\n",
		"sszcodec_ssz_decode_latency_us_count 1\n",
		"sszcodec_ssz_decode_latency_us_max 10\n",
		"sszcodec_empty_hist_count 0\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "sszcodec_empty_hist_min") {
		t.Errorf("empty histogram exported min:\n%s", out)
	}
}

func TestCodecMetrics(t *testing.T) {
	r := NewRegistry()
	m := NewCodecMetrics(r)
	m.DecodeTotal.Inc()
	m.DecodeError("truncated").Inc()
	m.DecodeError("truncated").Inc()
	m.EncodeError("list_too_long").Inc()
	snap := r.Snapshot()
	if snap.Counters[DecodeTotal] != 1 {
		t.Fatalf("%s = %d", DecodeTotal, snap.Counters[DecodeTotal])
	}
	if snap.Counters["ssz.decode.errors.truncated"] != 2 {
		t.Fatalf("truncated errors = %d", snap.Counters["ssz.decode.errors.truncated"])
	}
	if snap.Counters["ssz.encode.errors.list_too_long"] != 1 {
		t.Fatalf("list_too_long encode errors = %d", snap.Counters["ssz.encode.errors.list_too_long"])
	}
	if m.Registry() != r {
		t.Fatal("Registry() differs from constructor argument")
	}
	if NewCodecMetrics(nil).Registry() != DefaultRegistry {
		t.Fatal("nil registry did not fall back to DefaultRegistry")
	}
}
