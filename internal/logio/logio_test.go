package logio_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jcorbin/goforth/internal/logio"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var out strings.Builder
	var log logio.Logger
	log.SetOutput(&out)

	trace := log.Leveledf("TRACE")
	trace("eval %q", "2 3 +")
	log.Printf("", "bare")
	assert.Equal(t, 0, log.ExitCode(), "expected zero exit code before any error")

	log.ErrorIf(nil)
	assert.Equal(t, 0, log.ExitCode(), "nil errors are not logged")

	log.ErrorIf(errors.New("empty stack: first argument for +"))
	assert.Equal(t, 1, log.ExitCode(), "expected non-zero exit code after error")

	assert.Equal(t, strings.Join([]string{
		`TRACE: eval "2 3 +"`,
		`bare`,
		`ERROR: empty stack: first argument for +`,
	}, "\n")+"\n", out.String())
}

func TestWriter(t *testing.T) {
	var lines []string
	lw := logio.Writer{Logf: func(mess string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(mess, args...))
	}}
	fmt.Fprintf(&lw, "> [1, 2]\nhello ")
	fmt.Fprintf(&lw, "world")
	assert.Equal(t, []string{"> [1, 2]"}, lines, "expected only completed lines")
	assert.NoError(t, lw.Close())
	assert.Equal(t, []string{"> [1, 2]", "hello world"}, lines, "expected partial line after close")
}
