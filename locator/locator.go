// Package locator defines resource locators, logical paths and search roots.
package locator

import (
	neturl "net/url"
	"strings"
)

// Locator is an absolute, scheme-qualified reference to one resource.
type Locator string

func (l Locator) String() string {
	return string(l)
}

// Name returns the last path segment of the locator.
func (l Locator) Name() string {
	s := strings.TrimSuffix(string(l), Separator)
	if i := strings.LastIndex(s, Separator); i != -1 {
		return s[i+1:]
	}
	return s
}

// Join appends name to base verbatim and validates the result as a URL.
// A bare '%' in a name is kept as is; control bytes are rejected.
func Join(base, name string) (Locator, error) {
	candidate := base + name
	if _, err := neturl.Parse(candidate); err != nil {
		if _, retryErr := neturl.Parse(strings.ReplaceAll(candidate, "%", "%25")); retryErr != nil {
			return "", err
		}
	}
	return Locator(candidate), nil
}
