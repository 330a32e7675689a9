package ast

import (
	"github.com/symbaloo/elm-css-modules-plugin/internal/source"
)

// Program is the root node of one JavaScript file: an ordered statement list.
type Program struct {
	Span  source.Span
	Stmts []StmtID
}

type Programs struct {
	Arena *Arena[Program]
}

func NewPrograms(capHint uint) *Programs {
	return &Programs{
		Arena: NewArena[Program](capHint),
	}
}

func (p *Programs) New(sp source.Span) ProgramID {
	return ProgramID(p.Arena.Allocate(Program{
		Span:  sp,
		Stmts: make([]StmtID, 0),
	}))
}

func (p *Programs) Get(id ProgramID) *Program {
	return p.Arena.Get(uint32(id))
}
