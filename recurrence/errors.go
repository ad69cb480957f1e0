package recurrence

import "fmt"

// DomainError reports a field value outside the range or set the EWS schema
// allows for it. It is returned by constructors and Validate methods, never
// by Encode.
type DomainError struct {
	Field   string
	Value   any
	Allowed string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("value %v on field %q must be %s", e.Value, e.Field, e.Allowed)
}

// checkRange validates an integer field against its inclusive bounds.
func checkRange(field string, value, min, max int) error {
	if value < min || value > max {
		return &DomainError{Field: field, Value: value, Allowed: fmt.Sprintf("in range %d -> %d", min, max)}
	}
	return nil
}
