package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input implements sequential line reading through a Queue of one or more
// input streams. Each stream is closed, if it is an io.Closer, once it has
// been read to EOF. The location of the most recently read line is tracked to
// facilitate user feedback.
type Input struct {
	Queue []io.Reader

	cur  io.Reader
	br   *bufio.Reader
	last Location
	scan Location
}

// Location returns the name and number of the line last returned by ReadLine.
func (in *Input) Location() Location { return in.last }

// ReadLine returns the next line, without its trailing line ending, moving
// on to the next queued stream whenever the current one runs out.
// Returns io.EOF once every stream has been exhausted.
func (in *Input) ReadLine() (string, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return "", io.EOF
		}

		line, err := in.br.ReadString('\n')
		if line != "" {
			in.scan.Line++
			in.last = in.scan
			return strings.TrimRight(line, "\r\n"), nil
		}
		if err == io.EOF {
			in.closeIn()
			continue
		}
		if err != nil {
			return "", fmt.Errorf("%v: %w", in.scan, err)
		}
	}
}

// Close closes the current stream and any queued ones.
func (in *Input) Close() (err error) {
	if cerr := in.closeIn(); err == nil {
		err = cerr
	}
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) closeIn() (err error) {
	if cl, ok := in.cur.(io.Closer); ok {
		err = cl.Close()
	}
	in.cur = nil
	in.br = nil
	return err
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.cur = r
	in.br = bufio.NewReader(r)
	in.scan = Location{Name: nameOf(r)}
	return true
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
