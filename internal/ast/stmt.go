package ast

import (
	"github.com/symbaloo/elm-css-modules-plugin/internal/source"
)

// StmtKind enumerates statement kinds.
type StmtKind uint8

const (
	// StmtVar represents a var declaration with an optional initializer.
	StmtVar StmtKind = iota
	// StmtExpr represents an expression statement.
	StmtExpr
	// StmtReturn represents a return statement.
	StmtReturn
	// StmtBlock represents a braced statement list.
	StmtBlock
)

// Stmt represents a statement node in the tree.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// StmtVarData holds var declaration details. Init may be NoExprID.
type StmtVarData struct {
	Name source.StringID
	Init ExprID
}

// StmtExprData holds expression statement details.
type StmtExprData struct {
	Expr ExprID
}

// StmtReturnData holds return statement details. Value may be NoExprID.
type StmtReturnData struct {
	Value ExprID
}

// StmtBlockData holds a block's statement list.
type StmtBlockData struct {
	Stmts []StmtID
}

// Stmts manages allocation of statements.
type Stmts struct {
	Arena   *Arena[Stmt]
	Vars    *Arena[StmtVarData]
	Exprs   *Arena[StmtExprData]
	Returns *Arena[StmtReturnData]
	Blocks  *Arena[StmtBlockData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Vars:    NewArena[StmtVarData](capHint),
		Exprs:   NewArena[StmtExprData](capHint),
		Returns: NewArena[StmtReturnData](capHint),
		Blocks:  NewArena[StmtBlockData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewVar creates a new var declaration statement.
func (s *Stmts) NewVar(span source.Span, name source.StringID, init ExprID) StmtID {
	payload := s.Vars.Allocate(StmtVarData{Name: name, Init: init})
	return s.new(StmtVar, span, PayloadID(payload))
}

// Var returns the var declaration data for the given statement ID.
func (s *Stmts) Var(id StmtID) (*StmtVarData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtVar {
		return nil, false
	}
	return s.Vars.Get(uint32(stmt.Payload)), true
}

// NewExpr creates a new expression statement.
func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	payload := s.Exprs.Allocate(StmtExprData{Expr: expr})
	return s.new(StmtExpr, span, PayloadID(payload))
}

// Expr returns the expression statement data for the given statement ID.
func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}

// NewReturn creates a new return statement.
func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	payload := s.Returns.Allocate(StmtReturnData{Value: value})
	return s.new(StmtReturn, span, PayloadID(payload))
}

// Return returns the return statement data for the given statement ID.
func (s *Stmts) Return(id StmtID) (*StmtReturnData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(stmt.Payload)), true
}

// NewBlock creates a new block statement.
func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	payload := s.Blocks.Allocate(StmtBlockData{Stmts: stmts})
	return s.new(StmtBlock, span, PayloadID(payload))
}

// Block returns the block data for the given statement ID.
func (s *Stmts) Block(id StmtID) (*StmtBlockData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtBlock {
		return nil, false
	}
	return s.Blocks.Get(uint32(stmt.Payload)), true
}
