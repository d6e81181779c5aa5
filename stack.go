package main

import (
	"strconv"
	"strings"
)

// The stack is a standard LIFO of 32-bit cells, operated on implicitly by
// every builtin. Only pop can fail; it names what it was popping for so that
// an underflow says which operand went missing.
type stack []int32

func (s *stack) push(val int32) { *s = append(*s, val) }

func (s *stack) pop(context string) (val int32, err error) {
	i := len(*s) - 1
	if i < 0 {
		return 0, emptyStackError(context)
	}
	val, *s = (*s)[i], (*s)[:i]
	return val, nil
}

func (s *stack) clear() { *s = (*s)[:0] }

// snapshot returns a bottom-to-top copy of the stack, never nil.
func (s stack) snapshot() []int32 {
	vals := make([]int32, len(s))
	copy(vals, s)
	return vals
}

func (s stack) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, val := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatInt(int64(val), 10))
	}
	sb.WriteByte(']')
	return sb.String()
}
