//go:build ignore

// gendoc writes gmq reference documentation.
//
//	go run ./cmd/gendoc -format markdown -out docs/cli
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/samzong/gmq/cmd"
)

func main() {
	format := flag.String("format", "man", "output format: man or markdown")
	dir := flag.String("out", "./docs/man", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
		os.Exit(1)
	}

	root := cmd.RootCmd()
	root.DisableAutoGenTag = true

	var err error
	switch *format {
	case "man":
		err = doc.GenManTree(root, &doc.GenManHeader{
			Title:   "GMQ",
			Section: "1",
			Source:  "gmq",
			Manual:  "GMQ Manual",
		}, *dir)
	case "markdown":
		err = doc.GenMarkdownTree(root, *dir)
	default:
		err = fmt.Errorf("unknown format %q", *format)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating docs: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "%s docs generated in %s\n", *format, *dir)
}
