package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/repr"
)

type interpDumper struct {
	it  *Interp
	out io.Writer
}

func (dump interpDumper) dump() {
	fmt.Fprintf(dump.out, "# Interp Dump\n")
	fmt.Fprintf(dump.out, "  depth: %v/%v\n", dump.it.depth, dump.it.maxDepth)
	fmt.Fprintf(dump.out, "  stack: %v\n", dump.it.stack)
	dump.dumpWords()
	dump.dumpConstants()
}

func (dump interpDumper) dumpWords() {
	names := dump.it.words.names()
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(dump.out, "# Words\n")
	width := nameWidth(names)
	for _, name := range names {
		body, _ := dump.it.words.lookup(name)
		fmt.Fprintf(dump.out, "  %-*s %s\n", width, name, repr.String(body))
	}
}

func (dump interpDumper) dumpConstants() {
	names := dump.it.consts.names()
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(dump.out, "# Constants\n")
	width := nameWidth(names)
	for _, name := range names {
		val, _ := dump.it.consts.lookup(name)
		fmt.Fprintf(dump.out, "  %-*s %v\n", width, name, val)
	}
}

func nameWidth(names []string) (width int) {
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}
	return width
}
