//go:build tools

// Package tools pins build-time tooling in go.mod without shipping it.
package tools

import (
	_ "gotest.tools/gotestsum"
)
