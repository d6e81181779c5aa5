package main

import (
	"io"

	"github.com/jcorbin/goforth/internal/fileinput"
	"github.com/jcorbin/goforth/internal/flushio"
)

// InterpOption customizes an Interp; see the With* functions.
type InterpOption interface{ apply(it *Interp) }

// InterpOptions combines any number of options into one, applied in order.
func InterpOptions(opts ...InterpOption) InterpOption {
	var all options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			all = append(all, impl...)
		default:
			all = append(all, impl)
		}
	}
	return all
}

type options []InterpOption

func (opts options) apply(it *Interp) {
	for _, opt := range opts {
		opt.apply(it)
	}
}

const defaultMaxDepth = 1024

var defaultOptions = InterpOptions(
	withOutput(io.Discard),
	withMaxDepth(defaultMaxDepth),
)

type withLogfn func(mess string, args ...interface{})
type withLineErrorf func(mess string, args ...interface{})

func (logfn withLogfn) apply(it *Interp) {
	it.logfn = logfn
}

func (errorf withLineErrorf) apply(it *Interp) {
	it.lineErrorf = errorf
}

type inputOption struct{ io.Reader }
type lineReaderOption struct{ LineReader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type maxDepthOption int
type stackEchoOption bool

func withInput(r io.Reader) inputOption             { return inputOption{r} }
func withLineReader(lr LineReader) lineReaderOption { return lineReaderOption{lr} }
func withOutput(w io.Writer) outputOption           { return outputOption{w} }
func withTee(w io.Writer) teeOption                 { return teeOption{w} }
func withMaxDepth(depth int) maxDepthOption         { return maxDepthOption(depth) }
func withStackEcho(echo bool) stackEchoOption       { return stackEchoOption(echo) }

// Consecutive readers share one fileinput.Input, read one after another.
func (i inputOption) apply(it *Interp) {
	if n := len(it.in); n > 0 {
		if in, ok := it.in[n-1].(*fileinput.Input); ok {
			in.Queue = append(in.Queue, i.Reader)
			return
		}
	}
	it.in = append(it.in, &fileinput.Input{Queue: []io.Reader{i.Reader}})
}

func (lr lineReaderOption) apply(it *Interp) {
	it.in = append(it.in, lr.LineReader)
}

func (o outputOption) apply(it *Interp) {
	if it.out != nil {
		it.out.Flush()
	}
	it.out = flushio.New(o.Writer)
}

func (o teeOption) apply(it *Interp) {
	it.out = flushio.Tee(it.out, flushio.New(o.Writer))
}

func (depth maxDepthOption) apply(it *Interp) {
	if depth > 0 {
		it.maxDepth = int(depth)
	}
}

func (echo stackEchoOption) apply(it *Interp) {
	it.echoStack = bool(echo)
}
