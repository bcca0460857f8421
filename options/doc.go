// Package options persists the settings of the mesh tools between runs.
//
// The file is a JSON object keyed by tool name, each holding that tool's
// option values:
//
//	{
//	    "distribute": {
//	        "proportional": true,
//	        "close": false
//	    }
//	}
package options
