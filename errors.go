package main

import (
	"errors"
	"fmt"
)

var (
	errUnterminatedDefinition = errors.New("unterminated word definition")
	errUnterminatedString     = errors.New("unterminated string")
	errMissingConstantName    = errors.New("missing constant name")
	errDivideByZero           = errors.New("division by zero")
)

type emptyStackError string
type wordNameError string
type unknownTokenError string

func (ctx emptyStackError) Error() string   { return fmt.Sprintf("empty stack: %v", string(ctx)) }
func (name wordNameError) Error() string    { return fmt.Sprintf("invalid word name %q", string(name)) }
func (tok unknownTokenError) Error() string { return fmt.Sprintf("unknown token %q", string(tok)) }

type recursionError struct {
	word  string
	depth int
}

func (re recursionError) Error() string {
	return fmt.Sprintf("recursion limit exceeded calling %q at depth %v", re.word, re.depth)
}

// wordError attributes an error to the user word whose body raised it.
type wordError struct {
	word string
	error
}

func (we wordError) Error() string { return fmt.Sprintf("in %v: %v", we.word, we.error) }
func (we wordError) Unwrap() error { return we.error }
