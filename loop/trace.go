package loop

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'zenmesh.loop'.
func tracer() tracing.Trace {
	return tracing.Select("zenmesh.loop")
}
