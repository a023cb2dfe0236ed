package main

import (
	"log"
	"os"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log lines carry a one-letter level tag: I(nfo), W(arning), E(rror).
var (
	tagI = color.New(color.FgCyan).SprintFunc()
	tagW = color.New(color.FgYellow).SprintFunc()
	tagE = color.New(color.FgRed, color.Bold).SprintFunc()

	verbose atomic.Bool
)

func setupLogging(v bool) {
	verbose.Store(v)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		color.NoColor = true
	}
}

// infof is only printed in verbose mode.
func infof(format string, args ...interface{}) {
	if verbose.Load() {
		log.Printf(tagI("I")+" "+format, args...)
	}
}

func warnf(format string, args ...interface{}) {
	log.Printf(tagW("W")+" "+format, args...)
}

func errorf(format string, args ...interface{}) {
	log.Printf(tagE("E")+" "+format, args...)
}
