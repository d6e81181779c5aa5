package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/goforth/internal/fileinput"
)

// Run reads and evaluates lines from each line source in turn, until they
// are all exhausted or a line reading "exit" is seen. An evaluation error is
// reported on the output stream, and then evaluation resumes with the next
// line; only input, output, or context errors stop Run early.
func (it *Interp) Run(ctx context.Context) error {
	for _, in := range it.in {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}

			line, err := in.ReadLine()
			if errors.Is(err, io.EOF) {
				break
			} else if err != nil {
				return err
			}

			if strings.TrimSpace(line) == "exit" {
				it.logf(">", "exit")
				_, err := io.WriteString(it.out, "Bye!\n")
				if ferr := it.out.Flush(); err == nil {
					err = ferr
				}
				return err
			}

			if err := it.Eval(line); err != nil {
				if rerr := it.reportError(in, err); rerr != nil {
					return rerr
				}
			}
		}
	}
	return it.out.Flush()
}

func (it *Interp) reportError(in LineReader, err error) error {
	it.logf("!", "%+v", err)
	if it.lineErrorf != nil {
		if loc, ok := in.(interface{ Location() fileinput.Location }); ok {
			it.lineErrorf("%v: %v", loc.Location(), err)
		} else {
			it.lineErrorf("%v", err)
		}
	}
	if _, werr := fmt.Fprintf(it.out, "Error: %v\n", err); werr != nil {
		return werr
	}
	return it.out.Flush()
}
