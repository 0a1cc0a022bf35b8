package lister

import (
	"github.com/viant/reslist/matching"
	"github.com/viant/reslist/matching/option"
)

// DefaultSourcesMarker identifies companion source archives.
const DefaultSourcesMarker = "sources"

type Option func(*Lister)

// WithStorage sets the storage used by the directory backend and for remote archives
func WithStorage(storage Storage) Option {
	return func(l *Lister) {
		l.storage = storage
	}
}

// WithObserver sets the event observer
func WithObserver(observer Observer) Option {
	return func(l *Lister) {
		l.observer = observer
	}
}

// WithLogf reports events through a printf-style logger
func WithLogf(logf func(format string, args ...any)) Option {
	return func(l *Lister) {
		if logf == nil {
			return
		}
		l.observer = func(event Event) {
			if event.Entry != "" {
				logf("%v: %v (%v)", event.Type, event.Entry, event.Root)
				return
			}
			logf("%v: %v", event.Type, event.Root)
		}
	}
}

// WithSourcesMarker overrides the marker identifying sources archives; empty disables the check
func WithSourcesMarker(marker string) Option {
	return func(l *Lister) {
		l.sourcesMarker = marker
	}
}

// WithExclusions excludes archive entries matching the given patterns
func WithExclusions(opts ...option.Option) Option {
	return func(l *Lister) {
		l.matcher = matching.New(opts...)
	}
}

// WithDirectChildrenOnly drops archive entries nested below the listed path
// even when the archive carries no directory entry for their parent.
func WithDirectChildrenOnly() Option {
	return func(l *Lister) {
		l.directOnly = true
	}
}
