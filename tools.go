//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They keep mockgen, invoked through
// `go generate`, pinned in go.mod / go.sum.
package genre_lab

import (
	_ "go.uber.org/mock/mockgen"
)
