package analysis

import "fmt"

// EmptyInputError indicates a blank input where non-empty text is required.
// It is raised before any model call is made.
type EmptyInputError struct {
	Field string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s cannot be empty", e.Field)
}
