package traverse

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'zenmesh.traverse'.
func tracer() tracing.Trace {
	return tracing.Select("zenmesh.traverse")
}
