package tagmanager

import "fmt"

// AlreadyTaggedError is returned when the tag for a version already exists.
type AlreadyTaggedError struct {
	Tag string
}

func (e *AlreadyTaggedError) Error() string {
	return fmt.Sprintf("tag %s already exists", e.Tag)
}
