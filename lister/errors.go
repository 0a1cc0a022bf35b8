package lister

import "fmt"

// MalformedLocatorError reports a discovered name that cannot form a valid locator.
type MalformedLocatorError struct {
	Base string
	Name string
	Err  error
}

func (e *MalformedLocatorError) Error() string {
	return fmt.Sprintf("lister: malformed locator %q + %q: %v", e.Base, e.Name, e.Err)
}

func (e *MalformedLocatorError) Unwrap() error {
	return e.Err
}

// ArchiveReadError reports an archive container that cannot be opened or decoded.
type ArchiveReadError struct {
	Archive string
	Err     error
}

func (e *ArchiveReadError) Error() string {
	return fmt.Sprintf("lister: failed to read archive %v: %v", e.Archive, e.Err)
}

func (e *ArchiveReadError) Unwrap() error {
	return e.Err
}
