package main

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/viant/reslist/lister"
)

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "reslist",
		Level:  level,
	})
}

// observer maps listing events to log records.
func observer(logger *log.Logger) lister.Observer {
	return func(event lister.Event) {
		keyvals := []interface{}{"root", event.Root}
		if event.Entry != "" {
			keyvals = append(keyvals, "entry", event.Entry)
		}
		switch event.Type {
		case lister.RootSkippedSources:
			logger.Info(event.Type.String(), keyvals...)
		default:
			logger.Debug(event.Type.String(), keyvals...)
		}
	}
}
