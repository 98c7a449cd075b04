package trace

import (
	"fmt"
)

// FormatError reports a record whose contents contradict its header or
// whose rows are not a single numeric column.
type FormatError struct {
	Path   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed record %s: %s", e.Path, e.Reason)
}
