package logger

import (
	"io"
	"log"
	"os"
)

// Interface is the interface all loggers have to implement
type Interface interface {
	Error(message string, err error)
	Info(message string)
	Debug(message string)
	Fatal(err error)
}

// Logger writes leveled lines through the standard library logger
type Logger struct {
	// Verbose enables Debug output
	Verbose bool
	out     *log.Logger
}

// New builds a Logger writing to stderr
func New(verbose bool) Logger {
	return Logger{Verbose: verbose, out: log.New(os.Stderr, "", log.LstdFlags)}
}

// Discard returns a Logger that drops everything except Fatal, which still exits
func Discard() Logger {
	return Logger{out: log.New(io.Discard, "", 0)}
}

func (l Logger) printf(format string, v ...interface{}) {
	if l.out == nil {
		log.Printf(format, v...)
		return
	}
	l.out.Printf(format, v...)
}

// Error is for throwing a log message with status Error
func (l Logger) Error(message string, err error) {
	l.printf("[ERROR] %s: %v\n", message, err)
}

// Info is for throwing a log message with status Info
func (l Logger) Info(message string) {
	l.printf("[INFO] %s\n", message)
}

// Debug is for throwing a log message with status Debug
func (l Logger) Debug(message string) {
	if !l.Verbose {
		return
	}
	l.printf("[DEBUG] %s\n", message)
}

// Fatal is for throwing a log message with status Fatal
func (l Logger) Fatal(err error) {
	log.Fatalf("[FATAL] %v\n", err)
}
