package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/goforth/internal/flushio"
)

// core holds the interpreter's plumbing: where lines come from, where output
// goes, and where logs go.
type core struct {
	logging
	in         []LineReader
	out        flushio.WriteFlusher
	lineErrorf func(mess string, args ...interface{})
}

// Close flushes output and closes any line sources that need closing.
func (core *core) Close() (err error) {
	if core.out != nil {
		err = core.out.Flush()
	}
	for i := len(core.in) - 1; i >= 0; i-- {
		if cl, ok := core.in[i].(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	core.in = nil
	return err
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
