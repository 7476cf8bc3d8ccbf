//go:build tools

package tools

// cmd/gendoc is built with `go run` only, so keep cobra/doc in go.mod.
import (
	_ "github.com/spf13/cobra/doc"
)
