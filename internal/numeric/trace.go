package numeric

import (
	"fmt"
	"io"
	"sort"
)

// Tracer receives intermediate values from a routine. Implementations must
// not assume any particular set of keys; each routine documents the fields
// it emits. Tracing is purely observational and never changes what a
// routine returns.
type Tracer interface {
	Trace(step int, values map[string]float64)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(step int, values map[string]float64)

func (f TracerFunc) Trace(step int, values map[string]float64) { f(step, values) }

// WriterTracer formats every traced step onto W, one line per step with
// fields in key order.
type WriterTracer struct {
	W io.Writer
}

func (t WriterTracer) Trace(step int, values map[string]float64) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(t.W, "step %d:", step)
	for _, k := range keys {
		fmt.Fprintf(t.W, " %s=%.16f", k, values[k])
	}
	fmt.Fprintln(t.W)
}
