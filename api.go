package main

import (
	"io"

	"github.com/jcorbin/goforth/internal/panicerr"
)

// Interp is one interpreter session: a stack, a word dictionary, a constant
// table, and the fixed builtin operators. An Interp is not safe for
// concurrent use; independent sessions need independent Interps.
type Interp struct {
	core

	builtins builtins
	stack    stack
	words    words
	consts   constants

	depth     int
	maxDepth  int
	echoStack bool
}

// LineReader supplies lines of input to Run; io.EOF marks its end.
type LineReader interface {
	ReadLine() (string, error)
}

func New(opts ...InterpOption) *Interp {
	it := &Interp{builtins: newBuiltins()}
	defaultOptions.apply(it)
	InterpOptions(opts...).apply(it)
	return it
}

// Eval evaluates one line of input, stopping at the first error. Stack and
// dictionary changes made before the error are kept.
func (it *Interp) Eval(line string) error {
	err := panicerr.Recover("eval", func() error {
		it.logf(">", "eval %q", line)
		return it.evalTokens(tokenize(line))
	})
	if err == nil && it.echoStack {
		err = it.printStack()
	}
	if ferr := it.out.Flush(); err == nil {
		err = ferr
	}
	return err
}

// Stack returns the stack contents, bottom to top.
func (it *Interp) Stack() []int32 { return it.stack.snapshot() }

// Words returns user defined word names in definition order.
func (it *Interp) Words() []string { return it.words.names() }

// Constants returns constant names in definition order.
func (it *Interp) Constants() []string { return it.consts.names() }

func WithInput(r io.Reader) InterpOption        { return withInput(r) }
func WithLineReader(lr LineReader) InterpOption { return withLineReader(lr) }
func WithOutput(w io.Writer) InterpOption       { return withOutput(w) }
func WithTee(w io.Writer) InterpOption          { return withTee(w) }
func WithMaxDepth(depth int) InterpOption       { return withMaxDepth(depth) }
func WithStackEcho(echo bool) InterpOption      { return withStackEcho(echo) }

func WithLogf(logfn func(mess string, args ...interface{})) InterpOption { return withLogfn(logfn) }

// WithLineErrorf sets a function called with "<location>: <error>" whenever a
// line read by Run fails to evaluate.
func WithLineErrorf(errorf func(mess string, args ...interface{})) InterpOption {
	return withLineErrorf(errorf)
}
