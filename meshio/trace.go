// SPDX-License-Identifier: MIT
// Package: zenmesh/meshio

package meshio

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'zenmesh.meshio'.
func tracer() tracing.Trace {
	return tracing.Select("zenmesh.meshio")
}
