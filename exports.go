package gofidl

import (
	"github.com/gofidl/gofidl/ast"
	"github.com/gofidl/gofidl/internal/printer"
	"github.com/gofidl/gofidl/internal/resolver"
	"github.com/gofidl/gofidl/internal/types"
)

// Error is the error type returned by the processor. Match kinds with
// errors.Is against the Err* sentinels.
type Error = types.Error

// ErrorKind classifies an Error.
type ErrorKind = types.ErrorKind

// ErrorKindInfo describes an error kind and the phase that reports it.
type ErrorKindInfo = types.ErrorKindInfo

// Error kinds.
const (
	KindModelNotFound                = types.KindModelNotFound
	KindNamespaceNotFound            = types.KindNamespaceNotFound
	KindInvalidNamespaceImport       = types.KindInvalidNamespaceImport
	KindDuplicateNamespace           = types.KindDuplicateNamespace
	KindParseFailed                  = types.KindParseFailed
	KindUnresolvedReference          = types.KindUnresolvedReference
	KindUnresolvedNamespaceReference = types.KindUnresolvedNamespaceReference
	KindAmbiguousReference           = types.KindAmbiguousReference
	KindInvalidEnumerationReference  = types.KindInvalidEnumerationReference
	KindInvalidStructReference       = types.KindInvalidStructReference
	KindInvalidUnionReference        = types.KindInvalidUnionReference
	KindInvalidInterfaceReference    = types.KindInvalidInterfaceReference
	KindInvalidErrorReference        = types.KindInvalidErrorReference
	KindInvalidTypeReference         = types.KindInvalidTypeReference
	KindUnknownOperator              = types.KindUnknownOperator
	KindInvalidOperand               = types.KindInvalidOperand
	KindDivisionByZero               = types.KindDivisionByZero
	KindTypeMismatch                 = types.KindTypeMismatch
	KindOverflow                     = types.KindOverflow
	KindCircularReference            = types.KindCircularReference
	KindUnknownExpressionType        = types.KindUnknownExpressionType
)

// Sentinels for errors.Is.
var (
	ErrModelNotFound                = types.ErrModelNotFound
	ErrNamespaceNotFound            = types.ErrNamespaceNotFound
	ErrInvalidNamespaceImport       = types.ErrInvalidNamespaceImport
	ErrDuplicateNamespace           = types.ErrDuplicateNamespace
	ErrParseFailed                  = types.ErrParseFailed
	ErrUnresolvedReference          = types.ErrUnresolvedReference
	ErrUnresolvedNamespaceReference = types.ErrUnresolvedNamespaceReference
	ErrAmbiguousReference           = types.ErrAmbiguousReference
	ErrInvalidEnumerationReference  = types.ErrInvalidEnumerationReference
	ErrInvalidStructReference       = types.ErrInvalidStructReference
	ErrInvalidUnionReference        = types.ErrInvalidUnionReference
	ErrInvalidInterfaceReference    = types.ErrInvalidInterfaceReference
	ErrInvalidErrorReference        = types.ErrInvalidErrorReference
	ErrInvalidTypeReference         = types.ErrInvalidTypeReference
	ErrUnknownOperator              = types.ErrUnknownOperator
	ErrInvalidOperand               = types.ErrInvalidOperand
	ErrDivisionByZero               = types.ErrDivisionByZero
	ErrTypeMismatch                 = types.ErrTypeMismatch
	ErrOverflow                     = types.ErrOverflow
	ErrCircularReference            = types.ErrCircularReference
	ErrUnknownExpressionType        = types.ErrUnknownExpressionType
)

// KindOf returns the kind of err, or the unknown kind if err is not an
// *Error.
func KindOf(err error) ErrorKind {
	return types.KindOf(err)
}

// AllErrorKinds returns every error kind grouped by phase.
func AllErrorKinds() []ErrorKindInfo {
	return types.AllErrorKinds()
}

// Resolve finds the type named by fqn as seen from ns.
func Resolve(ns *ast.Namespace, fqn string) (ast.Type, error) {
	return resolver.Resolve(ns, fqn)
}

// ResolveValue finds the constant named by fqn as seen from ns.
func ResolveValue(ns *ast.Namespace, fqn string) (*ast.Constant, error) {
	return resolver.ResolveValue(ns, fqn)
}

// ResolveNamespace finds the type collection or interface named by fqn as
// seen from pkg.
func ResolveNamespace(pkg *ast.Package, fqn string) (*ast.Namespace, error) {
	return resolver.ResolveNamespace(pkg, fqn)
}

// PrintConstant renders the value of a resolved constant.
func PrintConstant(c *ast.Constant) string {
	return printer.Constant(c)
}

// PrintExpression renders an expression tree.
func PrintExpression(e ast.Expression) string {
	return printer.Expression(e)
}

// Basename returns the last dot-separated component of name.
func Basename(name string) string { return resolver.Basename(name) }

// PackageName returns name without its last component.
func PackageName(name string) string { return resolver.PackageName(name) }

// IsFQN reports whether name is qualified.
func IsFQN(name string) bool { return resolver.IsFQN(name) }

// SplitFQN splits "P.P.I.A" into ("P.P", "I", "A").
func SplitFQN(name string) (pkg, ns, local string) { return resolver.SplitFQN(name) }
