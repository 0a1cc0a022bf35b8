package lister

// EventType identifies a listing event.
type EventType int

const (
	// RootChecking is emitted before a root is processed.
	RootChecking EventType = iota
	// RootSkippedUnknown is emitted for roots that are neither directories nor archives.
	RootSkippedUnknown
	// RootSkippedSources is emitted for archive roots carrying the sources marker.
	RootSkippedSources
	// RootMissing is emitted for directory roots whose target does not exist.
	RootMissing
	// EntrySkippedDirectory is emitted for directory-like archive entries.
	EntrySkippedDirectory
	// EntrySkippedNested is emitted for archive entries below an immediate child directory.
	EntrySkippedNested
	// EntryExcluded is emitted for archive entries matching an exclusion rule.
	EntryExcluded
)

var eventNames = map[EventType]string{
	RootChecking:          "checking root",
	RootSkippedUnknown:    "ignoring unknown root",
	RootSkippedSources:    "ignoring sources root",
	RootMissing:           "root does not exist",
	EntrySkippedDirectory: "ignoring subdirectory entry",
	EntrySkippedNested:    "ignoring nested entry",
	EntryExcluded:         "ignoring excluded entry",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown event"
}

// Event describes a decision taken while listing.
type Event struct {
	Type  EventType
	Root  string
	Entry string
}

// Observer receives listing events synchronously.
type Observer func(event Event)
