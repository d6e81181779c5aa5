package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/jcorbin/goforth/internal/logio"
	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	var (
		timeout     time.Duration
		trace       bool
		echo        bool
		strict      bool
		dump        bool
		maxDepth    int
		prompt      string
		historyFile string
	)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&echo, "echo", false, "print the stack after every line")
	flag.BoolVar(&strict, "strict", false, "exit non-zero if any line fails")
	flag.BoolVar(&dump, "dump", false, "dump interpreter state to stderr at exit")
	flag.IntVar(&maxDepth, "max-depth", defaultMaxDepth, "limit word nesting depth")
	flag.StringVar(&prompt, "prompt", "> ", "interactive prompt")
	flag.StringVar(&historyFile, "history", "", "interactive history file")
	flag.Parse()

	var log logio.Logger
	log.SetOutput(os.Stderr)

	var opts = []InterpOption{
		WithOutput(os.Stdout),
		WithMaxDepth(maxDepth),
		WithStackEcho(echo),
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	if strict {
		opts = append(opts, WithLineErrorf(log.Errorf))
	}

	// source files first, then standard input
	for _, name := range flag.Args() {
		f, err := os.Open(name)
		if err != nil {
			log.ErrorIf(err)
			return log.ExitCode()
		}
		opts = append(opts, WithInput(f))
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		opts = append(opts, WithLineReader(newLinerInput(prompt, historyFile)))
	} else {
		opts = append(opts, WithInput(os.Stdin))
	}

	it := New(opts...)

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	log.ErrorIf(it.Run(ctx))
	if dump {
		interpDumper{it: it, out: os.Stderr}.dump()
	}
	log.ErrorIf(it.Close())
	return log.ExitCode()
}
