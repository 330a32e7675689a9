package diag

import (
	"math"
	"testing"

	"github.com/symbaloo/elm-css-modules-plugin/internal/source"
)

func mkDiag(sev Severity, code Code, file source.FileID, start uint32, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  source.Span{File: file, Start: start, End: start + 1},
	}
}

func TestBagAppendOrderPreserved(t *testing.T) {
	bag := NewBag(10)
	bag.Add(mkDiag(SevError, CSSEmptyClassName, 0, 20, "second in file"))
	bag.Add(mkDiag(SevError, CSSEmptyClassName, 0, 5, "first in file"))

	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("Len = %d, want 2", len(items))
	}
	// Без Sort порядок — порядок записи, не порядок позиций.
	if items[0].Message != "second in file" {
		t.Errorf("items[0] = %q", items[0].Message)
	}
}

func TestBagRespectsLimit(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(mkDiag(SevError, CSSEmptyClassName, 0, 0, "a")) {
		t.Fatalf("first Add rejected")
	}
	if !bag.Add(mkDiag(SevError, CSSEmptyClassName, 0, 1, "b")) {
		t.Fatalf("second Add rejected")
	}
	if bag.Add(mkDiag(SevError, CSSEmptyClassName, 0, 2, "c")) {
		t.Errorf("Add beyond cap accepted")
	}
	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := NewBag(4)
	if bag.HasErrors() {
		t.Errorf("empty bag has errors")
	}
	bag.Add(mkDiag(SevInfo, CSSInfo, 0, 0, "note"))
	if bag.HasErrors() {
		t.Errorf("info-only bag has errors")
	}
	bag.Add(mkDiag(SevError, CSSEmptyClassName, 0, 1, "boom"))
	if !bag.HasErrors() {
		t.Errorf("bag with an error reports none")
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	a := NewBag(1)
	a.Add(mkDiag(SevError, CSSEmptyClassName, 0, 0, "a"))
	b := NewBag(2)
	b.Add(mkDiag(SevError, CSSEmptyClassName, 1, 0, "b1"))
	b.Add(mkDiag(SevError, CSSEmptyClassName, 1, 1, "b2"))

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("merged Len = %d, want 3", a.Len())
	}
	if a.Items()[1].Message != "b1" || a.Items()[2].Message != "b2" {
		t.Errorf("merge reordered items: %v", a.Items())
	}
}

func TestBagSort(t *testing.T) {
	bag := NewBag(4)
	bag.Add(mkDiag(SevError, CSSEmptyClassName, 1, 0, "file1"))
	bag.Add(mkDiag(SevWarning, CSSInfo, 0, 9, "file0 late"))
	bag.Add(mkDiag(SevError, CSSEmptyClassName, 0, 2, "file0 early"))

	bag.Sort()
	got := []string{bag.Items()[0].Message, bag.Items()[1].Message, bag.Items()[2].Message}
	want := []string{"file0 early", "file0 late", "file1"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sorted[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(4)
	d := mkDiag(SevError, CSSEmptyClassName, 0, 3, "dup")
	bag.Add(d)
	bag.Add(d)
	bag.Add(mkDiag(SevError, CSSEmptyClassName, 0, 4, "other"))

	bag.Dedup()
	if bag.Len() != 2 {
		t.Errorf("deduped Len = %d, want 2", bag.Len())
	}
}

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{UnknownCode, "UNKNOWN"},
		{CSSEmptyClassName, "CSS1001"},
		{CSSMalformedTarget, "CSS1002"},
		{IOLoadFileError, "IO9001"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestNewBagClampsCap(t *testing.T) {
	tests := []struct {
		name string
		max  int
		want uint16
	}{
		{"normal", 256, 256},
		{"negative", -5, 0},
		{"beyond uint16", 1 << 20, math.MaxUint16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewBag(tt.max).Cap(); got != tt.want {
				t.Errorf("Cap() = %d, want %d", got, tt.want)
			}
		})
	}
}
