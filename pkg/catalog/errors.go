package catalog

import "fmt"

// MalformedLineError reports a catalog line (or a time segment of one) that
// does not follow the catalog grammar. Any such line aborts the whole parse:
// a schedule report built on a partially-parsed catalog cannot be trusted.
type MalformedLineError struct {
	Line   string
	Reason string
	Err    error
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed catalog line %q: %s", e.Line, e.Reason)
}

func (e *MalformedLineError) Unwrap() error {
	return e.Err
}
