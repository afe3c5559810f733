// Package logging is the process-wide logger for infrastructure events
// (engine lifecycle, storage saves, server start/stop). Request-scoped
// logging in the logic layer goes through logx instead.
package logging

import (
	"fmt"
	"log"
	"os"
)

var (
	disabled = false
	logger   = log.New(os.Stdout, "", log.LstdFlags)
)

// Disable turns off all logging, for CLI modes that own the terminal.
func Disable() {
	disabled = true
}

// Enable turns logging back on.
func Enable() {
	disabled = false
}

func output(prefix string, msg string) {
	if disabled {
		return
	}
	logger.Print(prefix + msg)
}

// Info logs an info message.
func Info(v ...any) {
	output("", fmt.Sprintln(v...))
}

// Infof logs a formatted info message.
func Infof(format string, v ...any) {
	output("", fmt.Sprintf(format+"\n", v...))
}

// Warn logs a warning message.
func Warn(v ...any) {
	output("[warn] ", fmt.Sprintln(v...))
}

// Warnf logs a formatted warning message.
func Warnf(format string, v ...any) {
	output("[warn] ", fmt.Sprintf(format+"\n", v...))
}

// Error logs an error message.
func Error(v ...any) {
	output("[error] ", fmt.Sprintln(v...))
}

// Errorf logs a formatted error message.
func Errorf(format string, v ...any) {
	output("[error] ", fmt.Sprintf(format+"\n", v...))
}
