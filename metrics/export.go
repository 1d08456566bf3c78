package metrics

import (
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strings"
)

// WriteText writes every metric in Prometheus text exposition format.
// Dots and dashes in names become underscores and namespace, when set, is
// prepended. Output is sorted by name.
func (r *Registry) WriteText(w io.Writer, namespace string) error {
	snap := r.Snapshot()
	var b strings.Builder

	for _, name := range slices.Sorted(maps.Keys(snap.Counters)) {
		pn := promName(namespace, name)
		writeHeader(&b, pn, name, "counter")
		fmt.Fprintf(&b, "%s %d\n", pn, snap.Counters[name])
	}
	for _, name := range slices.Sorted(maps.Keys(snap.Gauges)) {
		pn := promName(namespace, name)
		writeHeader(&b, pn, name, "gauge")
		fmt.Fprintf(&b, "%s %d\n", pn, snap.Gauges[name])
	}
	// Histograms are exported as summaries with min/max/mean extras.
	for _, name := range slices.Sorted(maps.Keys(snap.Histograms)) {
		h := snap.Histograms[name]
		pn := promName(namespace, name)
		writeHeader(&b, pn, name, "summary")
		fmt.Fprintf(&b, "%s_count %d\n", pn, h.Count)
		fmt.Fprintf(&b, "%s_sum %s\n", pn, formatFloat(h.Sum))
		if h.Count > 0 {
			fmt.Fprintf(&b, "%s_min %s\n", pn, formatFloat(h.Min))
			fmt.Fprintf(&b, "%s_max %s\n", pn, formatFloat(h.Max))
			fmt.Fprintf(&b, "%s_mean %s\n", pn, formatFloat(h.Mean()))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func promName(namespace, name string) string {
	s := strings.NewReplacer(".", "_", "-", "_").Replace(name)
	if namespace != "" {
		return namespace + "_" + s
	}
	return s
}

func writeHeader(b *strings.Builder, promName, help, typ string) {
	fmt.Fprintf(b, "# HELP %s %s\n", promName, help)
	fmt.Fprintf(b, "# TYPE %s %s\n", promName, typ)
}

func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case math.IsNaN(v):
		return "NaN"
	}
	return fmt.Sprintf("%g", v)
}
