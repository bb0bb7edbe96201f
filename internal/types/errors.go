package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a processor error. Kinds are distinguished by
// condition; every kind shares the Error type.
type ErrorKind int

// Importer error kinds.
const (
	ErrKindUnknown ErrorKind = iota
	KindModelNotFound
	KindNamespaceNotFound
	KindInvalidNamespaceImport
	KindDuplicateNamespace
	KindParseFailed
)

// Resolver error kinds.
const (
	KindUnresolvedReference ErrorKind = iota + 100
	KindUnresolvedNamespaceReference
	KindAmbiguousReference
	KindInvalidEnumerationReference
	KindInvalidStructReference
	KindInvalidUnionReference
	KindInvalidInterfaceReference
	KindInvalidErrorReference
	KindInvalidTypeReference
)

// Evaluator error kinds.
const (
	KindUnknownOperator ErrorKind = iota + 200
	KindInvalidOperand
	KindDivisionByZero
	KindTypeMismatch
	KindOverflow
	KindCircularReference
	KindUnknownExpressionType
)

var kindNames = map[ErrorKind]string{
	ErrKindUnknown:                   "unknown",
	KindModelNotFound:                "model-not-found",
	KindNamespaceNotFound:            "namespace-not-found",
	KindInvalidNamespaceImport:       "invalid-namespace-import",
	KindDuplicateNamespace:           "duplicate-namespace",
	KindParseFailed:                  "parse-failed",
	KindUnresolvedReference:          "unresolved-reference",
	KindUnresolvedNamespaceReference: "unresolved-namespace-reference",
	KindAmbiguousReference:           "ambiguous-reference",
	KindInvalidEnumerationReference:  "invalid-enumeration-reference",
	KindInvalidStructReference:       "invalid-struct-reference",
	KindInvalidUnionReference:        "invalid-union-reference",
	KindInvalidInterfaceReference:    "invalid-interface-reference",
	KindInvalidErrorReference:        "invalid-error-reference",
	KindInvalidTypeReference:         "invalid-type-reference",
	KindUnknownOperator:              "unknown-operator",
	KindInvalidOperand:               "invalid-operand",
	KindDivisionByZero:               "division-by-zero",
	KindTypeMismatch:                 "type-mismatch",
	KindOverflow:                     "overflow",
	KindCircularReference:            "circular-reference",
	KindUnknownExpressionType:        "unknown-expression-type",
}

// String returns the kebab-case kind name, used as a metric label.
func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Phase returns the component that reports errors of this kind.
func (k ErrorKind) Phase() string {
	switch {
	case k >= KindUnknownOperator:
		return "eval"
	case k >= KindUnresolvedReference:
		return "resolver"
	default:
		return "importer"
	}
}

// Error is a model error. The message is the authoritative, user-facing
// explanation and names the offending identifier.
type Error struct {
	Kind    ErrorKind
	Name    string // offending identifier, path or operator
	Message string
	Err     error // underlying cause, if any
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Errorf builds an Error of the given kind.
func Errorf(kind ErrorKind, name, format string, args ...any) *Error {
	return &Error{Kind: kind, Name: name, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or ErrKindUnknown if err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrKindUnknown
}

// Sentinels for errors.Is.
var (
	ErrModelNotFound                = &Error{Kind: KindModelNotFound}
	ErrNamespaceNotFound            = &Error{Kind: KindNamespaceNotFound}
	ErrInvalidNamespaceImport       = &Error{Kind: KindInvalidNamespaceImport}
	ErrDuplicateNamespace           = &Error{Kind: KindDuplicateNamespace}
	ErrParseFailed                  = &Error{Kind: KindParseFailed}
	ErrUnresolvedReference          = &Error{Kind: KindUnresolvedReference}
	ErrUnresolvedNamespaceReference = &Error{Kind: KindUnresolvedNamespaceReference}
	ErrAmbiguousReference           = &Error{Kind: KindAmbiguousReference}
	ErrInvalidEnumerationReference  = &Error{Kind: KindInvalidEnumerationReference}
	ErrInvalidStructReference       = &Error{Kind: KindInvalidStructReference}
	ErrInvalidUnionReference        = &Error{Kind: KindInvalidUnionReference}
	ErrInvalidInterfaceReference    = &Error{Kind: KindInvalidInterfaceReference}
	ErrInvalidErrorReference        = &Error{Kind: KindInvalidErrorReference}
	ErrInvalidTypeReference         = &Error{Kind: KindInvalidTypeReference}
	ErrUnknownOperator              = &Error{Kind: KindUnknownOperator}
	ErrInvalidOperand               = &Error{Kind: KindInvalidOperand}
	ErrDivisionByZero               = &Error{Kind: KindDivisionByZero}
	ErrTypeMismatch                 = &Error{Kind: KindTypeMismatch}
	ErrOverflow                     = &Error{Kind: KindOverflow}
	ErrCircularReference            = &Error{Kind: KindCircularReference}
	ErrUnknownExpressionType        = &Error{Kind: KindUnknownExpressionType}
)

// AllErrorKinds returns every error kind grouped by phase.
func AllErrorKinds() []ErrorKindInfo {
	kinds := []ErrorKind{
		// Importer
		KindModelNotFound,
		KindNamespaceNotFound,
		KindInvalidNamespaceImport,
		KindDuplicateNamespace,
		KindParseFailed,
		// Resolver
		KindUnresolvedReference,
		KindUnresolvedNamespaceReference,
		KindAmbiguousReference,
		KindInvalidEnumerationReference,
		KindInvalidStructReference,
		KindInvalidUnionReference,
		KindInvalidInterfaceReference,
		KindInvalidErrorReference,
		KindInvalidTypeReference,
		// Evaluator
		KindUnknownOperator,
		KindInvalidOperand,
		KindDivisionByZero,
		KindTypeMismatch,
		KindOverflow,
		KindCircularReference,
		KindUnknownExpressionType,
	}
	out := make([]ErrorKindInfo, len(kinds))
	for i, k := range kinds {
		out[i] = ErrorKindInfo{Kind: k, Name: k.String(), Phase: k.Phase()}
	}
	return out
}

// ErrorKindInfo describes an error kind and the phase that reports it.
type ErrorKindInfo struct {
	Kind  ErrorKind
	Name  string
	Phase string
}
