package ast

// Visitor is invoked once for every expression node, in pre-order.
// The return value controls descent: false skips the node's children,
// the walk then continues with its siblings.
type Visitor func(id ExprID) bool

// Walk performs a single deterministic pre-order traversal of program,
// invoking visit on every expression node. Statements are visited in
// document order; an expression is visited before its children.
//
// The visitor may mutate the node it is given (or allocate new nodes)
// through the Builder; children are read after the visit returns, so
// replacement subtrees are traversed like original ones.
func Walk(b *Builder, program ProgramID, visit Visitor) {
	p := b.Programs.Get(program)
	if p == nil {
		return
	}
	for _, stmt := range p.Stmts {
		walkStmt(b, stmt, visit)
	}
}

func walkStmt(b *Builder, id StmtID, visit Visitor) {
	stmt := b.Stmts.Get(id)
	if stmt == nil {
		return
	}
	switch stmt.Kind {
	case StmtVar:
		if data, ok := b.Stmts.Var(id); ok && data.Init.IsValid() {
			walkExpr(b, data.Init, visit)
		}
	case StmtExpr:
		if data, ok := b.Stmts.Expr(id); ok {
			walkExpr(b, data.Expr, visit)
		}
	case StmtReturn:
		if data, ok := b.Stmts.Return(id); ok && data.Value.IsValid() {
			walkExpr(b, data.Value, visit)
		}
	case StmtBlock:
		if data, ok := b.Stmts.Block(id); ok {
			for _, inner := range data.Stmts {
				walkStmt(b, inner, visit)
			}
		}
	}
}

func walkExpr(b *Builder, id ExprID, visit Visitor) {
	if !id.IsValid() {
		return
	}
	expr := b.Exprs.Get(id)
	if expr == nil {
		return
	}
	if !visit(id) {
		return
	}

	// Детей читаем после визита: visitor мог заменить поддеревья.
	switch expr.Kind {
	case ExprCall:
		if data, ok := b.Exprs.Call(id); ok {
			walkExpr(b, data.Target, visit)
			for _, arg := range data.Args {
				walkExpr(b, arg, visit)
			}
		}
	case ExprObject:
		if data, ok := b.Exprs.Object(id); ok {
			for _, prop := range data.Props {
				walkExpr(b, prop.Value, visit)
			}
		}
	case ExprIndex:
		if data, ok := b.Exprs.Index(id); ok {
			walkExpr(b, data.Target, visit)
			walkExpr(b, data.Index, visit)
		}
	case ExprMember:
		if data, ok := b.Exprs.Member(id); ok {
			walkExpr(b, data.Target, visit)
		}
	case ExprArray:
		if data, ok := b.Exprs.Array(id); ok {
			for _, el := range data.Elements {
				walkExpr(b, el, visit)
			}
		}
	case ExprFunc:
		if data, ok := b.Exprs.Func(id); ok {
			for _, stmt := range data.Body {
				walkStmt(b, stmt, visit)
			}
		}
	case ExprAssign:
		if data, ok := b.Exprs.Assign(id); ok {
			walkExpr(b, data.Target, visit)
			walkExpr(b, data.Value, visit)
		}
	case ExprIdent, ExprLit:
		// leaves
	}
}
