package main

import (
	"io"
	"log"
)

// logger is the sink for progress messages; results go to stdout instead.
type logger interface {
	Log(format string, args ...any)
}

var (
	_ logger = (*nopLogger)(nil)
	_ logger = (*stdLogger)(nil)
)

type nopLogger struct{}

func (nopLogger) Log(string, ...any) {}

type stdLogger struct {
	l *log.Logger
}

func newStdLogger(w io.Writer) *stdLogger {
	return &stdLogger{l: log.New(w, "avlctl: ", 0)}
}

func (s *stdLogger) Log(format string, args ...any) {
	s.l.Printf(format, args...)
}
