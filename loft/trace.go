package loft

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'zenmesh.loft'.
func tracer() tracing.Trace {
	return tracing.Select("zenmesh.loft")
}
