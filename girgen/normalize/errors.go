package normalize

import "fmt"

// ResolutionError reports a type, parent, or implements reference that
// could not be resolved in any namespace of the run. It is fatal for the
// whole run: once the graph is known inconsistent, no downstream planning
// result is meaningful.
type ResolutionError struct {
	// Ref is the reference as written in the raw input.
	Ref string

	// From is the qualified name of the entity that holds the reference.
	From string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve reference %q from %s", e.Ref, e.From)
}
