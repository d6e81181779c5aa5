package flushio_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/jcorbin/goforth/internal/flushio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainWriter struct{ buf bytes.Buffer }

func (pw *plainWriter) Write(p []byte) (int, error) { return pw.buf.Write(p) }

func TestNew(t *testing.T) {
	assert.Equal(t, flushio.Discard, flushio.New(nil), "nil discards")
	assert.Equal(t, flushio.Discard, flushio.New(io.Discard), "io.Discard discards")

	var sb strings.Builder
	wf := flushio.New(&sb)
	_, err := io.WriteString(wf, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", sb.String(), "buffers are written through")

	var pw plainWriter
	wf = flushio.New(&pw)
	_, err = io.WriteString(wf, "world")
	require.NoError(t, err)
	assert.Equal(t, "", pw.buf.String(), "expected buffered output before flush")
	require.NoError(t, wf.Flush())
	assert.Equal(t, "world", pw.buf.String(), "expected output after flush")
	assert.Equal(t, wf, flushio.New(wf), "WriteFlushers pass through")
}

func TestTee(t *testing.T) {
	var a, b strings.Builder
	wf := flushio.Tee(flushio.New(&a), nil, flushio.Tee(flushio.New(&b), flushio.Discard))
	_, err := io.WriteString(wf, "> [1, 2]\n")
	require.NoError(t, err)
	require.NoError(t, wf.Flush())
	assert.Equal(t, "> [1, 2]\n", a.String())
	assert.Equal(t, "> [1, 2]\n", b.String())

	assert.Equal(t, flushio.Discard, flushio.Tee(), "empty tee discards")
	single := flushio.New(&a)
	assert.Equal(t, single, flushio.Tee(nil, single), "single tee unwraps")
}
