package ast

import (
	"github.com/symbaloo/elm-css-modules-plugin/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena    *Arena[Expr]
	Idents   *Arena[ExprIdentData]
	Literals *Arena[ExprLiteralData]
	Calls    *Arena[ExprCallData]
	Objects  *Arena[ExprObjectData]
	Indices  *Arena[ExprIndexData]
	Members  *Arena[ExprMemberData]
	Arrays   *Arena[ExprArrayData]
	Funcs    *Arena[ExprFuncData]
	Assigns  *Arena[ExprAssignData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using
// capHint as the initial capacity. If capHint is 0, 1<<8 is used.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Idents:   NewArena[ExprIdentData](capHint),
		Literals: NewArena[ExprLiteralData](capHint),
		Calls:    NewArena[ExprCallData](capHint),
		Objects:  NewArena[ExprObjectData](capHint),
		Indices:  NewArena[ExprIndexData](capHint),
		Members:  NewArena[ExprMemberData](capHint),
		Arrays:   NewArena[ExprArrayData](capHint),
		Funcs:    NewArena[ExprFuncData](capHint),
		Assigns:  NewArena[ExprAssignData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewIdent creates a new identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

// Ident returns the identifier data for the given expression ID.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// NewLiteral creates a new literal expression.
func (e *Exprs) NewLiteral(span source.Span, kind ExprLitKind, value source.StringID) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{Kind: kind, Value: value})
	return e.new(ExprLit, span, PayloadID(payload))
}

// Literal returns the literal data for the given expression ID.
func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// NewCall creates a new function call expression.
func (e *Exprs) NewCall(span source.Span, target ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{
		Target: target,
		Args:   append([]ExprID(nil), args...),
	})
	return e.new(ExprCall, span, PayloadID(payload))
}

// Call returns the call data for the given expression ID.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

// NewObject creates a new object literal expression.
func (e *Exprs) NewObject(span source.Span, props []ObjectProp) ExprID {
	payload := e.Objects.Allocate(ExprObjectData{
		Props: append([]ObjectProp(nil), props...),
	})
	return e.new(ExprObject, span, PayloadID(payload))
}

// Object returns the object literal data for the given expression ID.
func (e *Exprs) Object(id ExprID) (*ExprObjectData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprObject {
		return nil, false
	}
	return e.Objects.Get(uint32(expr.Payload)), true
}

// NewIndex creates a new computed member access expression.
func (e *Exprs) NewIndex(span source.Span, target, index ExprID) ExprID {
	payload := e.Indices.Allocate(ExprIndexData{Target: target, Index: index})
	return e.new(ExprIndex, span, PayloadID(payload))
}

// Index returns the computed member access data for the given expression ID.
func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIndex {
		return nil, false
	}
	return e.Indices.Get(uint32(expr.Payload)), true
}

// NewMember creates a new static member access expression.
func (e *Exprs) NewMember(span source.Span, target ExprID, field source.StringID) ExprID {
	payload := e.Members.Allocate(ExprMemberData{Target: target, Field: field})
	return e.new(ExprMember, span, PayloadID(payload))
}

// Member returns the static member access data for the given expression ID.
func (e *Exprs) Member(id ExprID) (*ExprMemberData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMember {
		return nil, false
	}
	return e.Members.Get(uint32(expr.Payload)), true
}

// NewArray creates a new array literal expression.
func (e *Exprs) NewArray(span source.Span, elements []ExprID) ExprID {
	payload := e.Arrays.Allocate(ExprArrayData{
		Elements: append([]ExprID(nil), elements...),
	})
	return e.new(ExprArray, span, PayloadID(payload))
}

// Array returns the array literal data for the given expression ID.
func (e *Exprs) Array(id ExprID) (*ExprArrayData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprArray {
		return nil, false
	}
	return e.Arrays.Get(uint32(expr.Payload)), true
}

// NewFunc creates a new function expression.
func (e *Exprs) NewFunc(span source.Span, params []source.StringID, body []StmtID) ExprID {
	payload := e.Funcs.Allocate(ExprFuncData{
		Params: append([]source.StringID(nil), params...),
		Body:   append([]StmtID(nil), body...),
	})
	return e.new(ExprFunc, span, PayloadID(payload))
}

// Func returns the function expression data for the given expression ID.
func (e *Exprs) Func(id ExprID) (*ExprFuncData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprFunc {
		return nil, false
	}
	return e.Funcs.Get(uint32(expr.Payload)), true
}

// NewAssign creates a new assignment expression.
func (e *Exprs) NewAssign(span source.Span, target, value ExprID) ExprID {
	payload := e.Assigns.Allocate(ExprAssignData{Target: target, Value: value})
	return e.new(ExprAssign, span, PayloadID(payload))
}

// Assign returns the assignment data for the given expression ID.
func (e *Exprs) Assign(id ExprID) (*ExprAssignData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAssign {
		return nil, false
	}
	return e.Assigns.Get(uint32(expr.Payload)), true
}
