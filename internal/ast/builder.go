package ast

import (
	"github.com/symbaloo/elm-css-modules-plugin/internal/source"
)

type Hints struct{ Programs, Stmts, Exprs uint }

// Builder bundles the arenas for one tree plus the string interner the
// front-end used while building it. The transform reads and mutates nodes
// exclusively through a Builder.
type Builder struct {
	Programs *Programs
	Stmts    *Stmts
	Exprs    *Exprs
	Strings  *source.Interner
}

func NewBuilder(hints Hints) *Builder {
	if hints.Programs == 0 {
		hints.Programs = 1 << 3
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 7
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	return &Builder{
		Programs: NewPrograms(hints.Programs),
		Stmts:    NewStmts(hints.Stmts),
		Exprs:    NewExprs(hints.Exprs),
		Strings:  source.NewInterner(),
	}
}

func (b *Builder) NewProgram(sp source.Span) ProgramID {
	return b.Programs.New(sp)
}

func (b *Builder) PushStmt(program ProgramID, stmt StmtID) {
	p := b.Programs.Get(program)
	p.Stmts = append(p.Stmts, stmt)
}

// Intern is shorthand for b.Strings.Intern.
func (b *Builder) Intern(s string) source.StringID {
	return b.Strings.Intern(s)
}
