package projection

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when a scenario cannot be projected.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// FieldError describes one rejected scenario field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfiguration, e.Field, e.Reason)
}

// Is makes every FieldError match ErrInvalidConfiguration.
func (e *FieldError) Is(target error) bool { return target == ErrInvalidConfiguration }
