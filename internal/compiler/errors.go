package compiler

import (
	"fmt"
	"strings"
)

// Kind classifies a compile-time violation.
type Kind string

const (
	KindDisplay         Kind = "InvalidDisplay"
	KindNoHomePage      Kind = "NoHomePage"
	KindUnknownType     Kind = "UnknownType"
	KindDanglingPage    Kind = "DanglingPageRef"
	KindDanglingWidget  Kind = "DanglingWidgetRef"
	KindUnknownProperty Kind = "UnknownProperty"
	KindMissingRequired Kind = "MissingRequired"
	KindTypeMismatch    Kind = "TypeMismatch"
)

// Error is one compile-time violation, tied to the id of the offending
// entity so the user can locate and fix it without re-running the compiler.
type Error struct {
	Kind    Kind
	Subject string // offending widget/page id
	Field   string // property name, when relevant
	Detail  string // expected vs. actual, target id, etc.
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Subject)
	if e.Field != "" {
		msg += "." + e.Field
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Errors is the full batch of violations from one compilation pass.
type Errors []*Error

func (es Errors) Error() string {
	if len(es) == 0 {
		return "no errors"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d error(s) found:", len(es))
	for _, e := range es {
		b.WriteString("\n  - ")
		b.WriteString(e.Error())
	}
	return b.String()
}
