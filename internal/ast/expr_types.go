package ast

import (
	"github.com/symbaloo/elm-css-modules-plugin/internal/source"
)

// ExprKind enumerates the JavaScript expression kinds the Elm compiler
// output needs. This is a deliberately small subset: compiled Elm is
// ES5 without classes, template strings, or destructuring.
type ExprKind uint8

const (
	// ExprIdent represents an identifier expression.
	ExprIdent ExprKind = iota
	// ExprLit represents a literal expression.
	ExprLit
	// ExprCall represents a function call expression.
	ExprCall
	// ExprObject represents an object literal.
	ExprObject
	// ExprIndex represents a computed member access, target[index].
	ExprIndex
	// ExprMember represents a static member access, target.field.
	ExprMember
	ExprArray
	ExprFunc
	ExprAssign
)

// Expr represents an expression node in the tree.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprLitKind enumerates literal kinds.
type ExprLitKind uint8

const (
	// ExprLitString represents a string literal.
	ExprLitString ExprLitKind = iota
	// ExprLitNumber represents a numeric literal.
	ExprLitNumber
	ExprLitBool
	ExprLitNull
)

// ExprIdentData holds identifier expression details.
type ExprIdentData struct {
	Name source.StringID
}

// ExprLiteralData holds literal expression details.
// Value is the decoded payload: for strings the unquoted content,
// for numbers the raw digits.
type ExprLiteralData struct {
	Kind  ExprLitKind
	Value source.StringID
}

// ExprCallData holds function call expression details.
type ExprCallData struct {
	Target ExprID
	Args   []ExprID
}

// ObjectProp represents one key/value property of an object literal.
// Keys in compiled Elm output are always plain identifiers.
type ObjectProp struct {
	Key     source.StringID
	KeySpan source.Span
	Value   ExprID
}

// ExprObjectData holds object literal details.
type ExprObjectData struct {
	Props []ObjectProp
}

// ExprIndexData holds computed member access details.
type ExprIndexData struct {
	Target ExprID
	Index  ExprID
}

// ExprMemberData holds static member access details.
type ExprMemberData struct {
	Target ExprID
	Field  source.StringID
}

// ExprArrayData holds array literal details.
type ExprArrayData struct {
	Elements []ExprID
}

// ExprFuncData holds function expression details.
type ExprFuncData struct {
	Params []source.StringID
	Body   []StmtID
}

// ExprAssignData holds assignment expression details.
type ExprAssignData struct {
	Target ExprID
	Value  ExprID
}
