package model

import "fmt"

// ErrorKind classifies a mutation-time validation failure.
type ErrorKind string

const (
	ErrDuplicateID        ErrorKind = "DuplicateId"
	ErrInvalidID          ErrorKind = "InvalidId"
	ErrUnknownType        ErrorKind = "UnknownType"
	ErrUnknownPage        ErrorKind = "UnknownPage"
	ErrUnknownParent      ErrorKind = "UnknownParent"
	ErrUnknownWidget      ErrorKind = "UnknownWidget"
	ErrChildrenNotAllowed ErrorKind = "ChildrenNotAllowed"
	ErrUnknownProperty    ErrorKind = "UnknownProperty"
	ErrTypeMismatch       ErrorKind = "TypeMismatch"
	ErrUnknownTrigger     ErrorKind = "UnknownTrigger"
	ErrLastPage           ErrorKind = "LastPage"
)

// ValidationError reports a rejected model mutation. The model is left
// unchanged whenever one is returned.
type ValidationError struct {
	Kind    ErrorKind
	Subject string // offending page/widget/type id
	Field   string // property or field name, when relevant
	Detail  string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Subject)
	if e.Field != "" {
		msg += "." + e.Field
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// IsKind reports whether err is a *ValidationError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	ve, ok := err.(*ValidationError)
	return ok && ve.Kind == kind
}

// Warning is recoverable editing feedback, reported for expected side
// effects of a mutation (e.g. a cascade delete stripping an action effect
// on a surviving widget) rather than correctness violations.
type Warning struct {
	Subject string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Subject, w.Message)
}
