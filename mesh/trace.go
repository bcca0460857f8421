package mesh

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'zenmesh.mesh'.
func tracer() tracing.Trace {
	return tracing.Select("zenmesh.mesh")
}
