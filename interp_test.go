package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/jcorbin/goforth/internal/logio"
	"github.com/stretchr/testify/assert"
)

type interpTestCases []interpTestCase

func (its interpTestCases) run(t *testing.T) {
	{
		var exclusive []interpTestCase
		for _, tc := range its {
			if tc.exclusive {
				exclusive = append(exclusive, tc)
			}
		}
		if len(exclusive) > 0 {
			its = exclusive
		}
	}
	for _, tc := range its {
		t.Run(tc.name, tc.run)
	}
}

func interpTest(name string) (tc interpTestCase) {
	tc.name = name
	return tc
}

type evalStep struct {
	line    string
	wantErr error
}

type interpTestCase struct {
	name   string
	opts   []InterpOption
	setup  []func(it *Interp)
	steps  []evalStep
	expect []func(t *testing.T, it *Interp)

	exclusive bool
}

func (tc interpTestCase) exclusiveTest() interpTestCase {
	tc.exclusive = true
	return tc
}

func (tc interpTestCase) withOptions(opts ...InterpOption) interpTestCase {
	tc.opts = append(tc.opts, opts...)
	return tc
}

func (tc interpTestCase) withStack(values ...int32) interpTestCase {
	tc.setup = append(tc.setup, func(it *Interp) {
		for _, val := range values {
			it.stack.push(val)
		}
	})
	return tc
}

func (tc interpTestCase) withWord(name string, body ...string) interpTestCase {
	tc.setup = append(tc.setup, func(it *Interp) {
		it.words.define(name, body)
	})
	return tc
}

func (tc interpTestCase) withConstant(name string, val int32) interpTestCase {
	tc.setup = append(tc.setup, func(it *Interp) {
		it.consts.define(name, val)
	})
	return tc
}

func (tc interpTestCase) eval(lines ...string) interpTestCase {
	for _, line := range lines {
		tc.steps = append(tc.steps, evalStep{line: line})
	}
	return tc
}

// expectError expects the last line given to eval to fail with err.
func (tc interpTestCase) expectError(err error) interpTestCase {
	steps := append([]evalStep(nil), tc.steps...)
	steps[len(steps)-1].wantErr = err
	tc.steps = steps
	return tc
}

func (tc interpTestCase) expectStack(values ...int32) interpTestCase {
	tc.expect = append(tc.expect, func(t *testing.T, it *Interp) {
		if values == nil {
			values = []int32{}
		}
		assert.Equal(t, values, it.Stack(), "expected stack values")
	})
	return tc
}

func (tc interpTestCase) expectWord(name string, body ...string) interpTestCase {
	tc.expect = append(tc.expect, func(t *testing.T, it *Interp) {
		got, defined := it.words.lookup(name)
		if assert.True(t, defined, "expected word %q to be defined", name) {
			if body == nil {
				body = []string{}
			}
			if got == nil {
				got = []string{}
			}
			assert.Equal(t, body, got, "expected word %q body", name)
		}
	})
	return tc
}

func (tc interpTestCase) expectWords(names ...string) interpTestCase {
	tc.expect = append(tc.expect, func(t *testing.T, it *Interp) {
		assert.Equal(t, names, it.Words(), "expected word names")
	})
	return tc
}

func (tc interpTestCase) expectConstant(name string, val int32) interpTestCase {
	tc.expect = append(tc.expect, func(t *testing.T, it *Interp) {
		got, defined := it.consts.lookup(name)
		if assert.True(t, defined, "expected constant %q to be defined", name) {
			assert.Equal(t, val, got, "expected constant %q value", name)
		}
	})
	return tc
}

func (tc interpTestCase) expectDepth(depth int) interpTestCase {
	tc.expect = append(tc.expect, func(t *testing.T, it *Interp) {
		assert.Equal(t, depth, it.depth, "expected call depth")
	})
	return tc
}

func (tc interpTestCase) expectOutput(output string) interpTestCase {
	var out strings.Builder
	tc.opts = append(tc.opts, WithOutput(&out))
	tc.expect = append(tc.expect, func(t *testing.T, it *Interp) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return tc
}

func (tc interpTestCase) run(t *testing.T) {
	opts := tc.opts
	if testing.Verbose() {
		opts = append(opts[:len(opts):len(opts)], WithLogf(t.Logf))
	}
	it := New(opts...)

	defer func() {
		if t.Failed() {
			dumpToTest(t, it)
		}
	}()

	for _, setup := range tc.setup {
		setup(it)
	}
	for i, step := range tc.steps {
		err := it.Eval(step.line)
		if step.wantErr != nil {
			assert.True(t, errors.Is(err, step.wantErr),
				"line[%v] %q expected error: %v\ngot: %+v", i, step.line, step.wantErr, err)
		} else {
			assert.NoError(t, err, "line[%v] %q unexpected error", i, step.line)
		}
	}
	for _, expect := range tc.expect {
		expect(t, it)
	}
}

func dumpToTest(t *testing.T, it *Interp) {
	lw := logio.Writer{Logf: t.Logf}
	defer lw.Close()
	interpDumper{it: it, out: &lw}.dump()
}
