package main

import (
	"errors"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// linerInput reads lines from an interactive terminal, with line editing and
// history. Ctrl-C abandons the line being typed; Ctrl-D ends input.
type linerInput struct {
	*liner.State
	prompt      string
	historyFile string
}

func newLinerInput(prompt, historyFile string) *linerInput {
	li := &linerInput{
		State:       liner.NewLiner(),
		prompt:      prompt,
		historyFile: historyFile,
	}
	li.SetCtrlCAborts(true)
	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			li.ReadHistory(f)
			f.Close()
		}
	}
	return li
}

func (li *linerInput) ReadLine() (string, error) {
	line, err := li.Prompt(li.prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", nil
	} else if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		li.AppendHistory(line)
	}
	return line, nil
}

// Close saves history, if a history file was given, and restores the
// terminal.
func (li *linerInput) Close() (err error) {
	if li.historyFile != "" {
		var f *os.File
		if f, err = os.Create(li.historyFile); err == nil {
			_, err = li.WriteHistory(f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}
	}
	if cerr := li.State.Close(); err == nil {
		err = cerr
	}
	return err
}
