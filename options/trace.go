// SPDX-License-Identifier: MIT
// Package: zenmesh/options

package options

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'zenmesh.options'.
func tracer() tracing.Trace {
	return tracing.Select("zenmesh.options")
}
