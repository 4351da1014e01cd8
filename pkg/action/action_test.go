package action_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/alnedit/pkg/action"
	"github.com/andrew-torda/alnedit/pkg/edit"
	"github.com/andrew-torda/alnedit/pkg/model"
	"github.com/andrew-torda/alnedit/pkg/selection"
	"github.com/andrew-torda/alnedit/pkg/tokenset"
)

var _ Batcher = (*edit.Recorder[byte])(nil)

func setup(t *testing.T, rows ...string) (*model.List[byte], *selection.Selection, *Provider[byte]) {
	t.Helper()
	m, err := model.FromStrings(tokenset.NewDNA(), rows...)
	if err != nil {
		t.Fatal(err)
	}
	sel := selection.New()
	return m, sel, New[byte](m, sel)
}

func check(t *testing.T, m model.Reader[byte], want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, model.Strings(m)); diff != "" {
		t.Fatalf("alignment (-want +got):\n%s", diff)
	}
}

// TestDeleteForwardJagged has rows of lengths 5, 3 and 5 and deletes
// at column 4, which only two of them have.
func TestDeleteForwardJagged(t *testing.T) {
	m, sel, p := setup(t, "ACGTA", "ACG", "GGGGC")
	sel.SetCursor(4, 0, 3)
	changed, err := p.DeleteForward()
	if err != nil || !changed {
		t.Fatal("DeleteForward", changed, err)
	}
	check(t, m, "ACGT", "ACG", "GGGG")

	sel.SetCursor(3, 1, 1) // only the short row, past its end
	if changed, _ := p.DeleteForward(); changed {
		t.Fatal("nothing should have changed")
	}
	check(t, m, "ACGT", "ACG", "GGGG")
}

func TestDeleteSelection(t *testing.T) {
	m, sel, p := setup(t, "ACGTA", "AC", "GGGGC")
	sel.SetCursor(0, 0, 3)
	sel.Select(1, 3)
	changed, err := p.DeleteForward()
	if err != nil || !changed {
		t.Fatal("DeleteForward with selection", changed, err)
	}
	check(t, m, "AA", "A", "GC")
	if !sel.IsEmpty() || sel.CursorColumn != 1 {
		t.Fatal("selection after delete", sel)
	}
	if changed, _ := p.DeleteSelection(); changed {
		t.Fatal("empty selection should change nothing")
	}
}

func TestDeleteBackwards(t *testing.T) {
	m, sel, p := setup(t, "ACGT", "A")
	sel.SetCursor(2, 0, 2)
	changed, err := p.DeleteBackwards()
	if err != nil || !changed {
		t.Fatal("DeleteBackwards", changed, err)
	}
	check(t, m, "AGT", "A")
	if sel.CursorColumn != 1 {
		t.Fatal("cursor at", sel.CursorColumn)
	}
	p.DeleteBackwards()
	check(t, m, "GT", "")
	if changed, _ := p.DeleteBackwards(); changed || sel.CursorColumn != 0 {
		t.Fatal("at column 0 nothing should happen", changed, sel)
	}
}

func TestElongate(t *testing.T) {
	m, _, p := setup(t, "AC")
	if n, err := p.ElongateSequence("s0", 5); err != nil || n != 3 {
		t.Fatal("Elongate", n, err)
	}
	if n, _ := p.ElongateSequence("s0", 2); n != 0 {
		t.Fatal("shortening elongation added", n)
	}
	check(t, m, "AC---")
}

func TestInsertToken(t *testing.T) {
	m, sel, p := setup(t, "ACGT", "A", "")
	sel.SetCursor(2, 0, 3)
	changed, err := p.InsertToken('T')
	if err != nil || !changed {
		t.Fatal("InsertToken", changed, err)
	}
	check(t, m, "ACTGT", "A-T", "--T")
	if sel.CursorColumn != 3 {
		t.Fatal("cursor at", sel.CursorColumn)
	}
	sel.Select(0, 2)
	p.InsertToken('G')
	check(t, m, "GGACTGT", "GGA-T", "GG--T")
	if sel.CursorColumn != 2 || !sel.IsEmpty() {
		t.Fatal("after multi insert", sel)
	}
}

func TestOverwrite(t *testing.T) {
	m, sel, p := setup(t, "ACGTA", "AC", "A")
	sel.SetCursor(0, 0, 3)
	sel.Select(1, 3)
	changed, err := p.OverwriteWithToken('T')
	if err != nil || !changed {
		t.Fatal("Overwrite", changed, err)
	}
	check(t, m, "ATA", "AT", "AT")
	if sel.CursorColumn != 2 {
		t.Fatal("cursor at", sel.CursorColumn)
	}
	sel.SetCursor(4, 0, 1)
	p.OverwriteWithToken('C')
	check(t, m, "ATA-C", "AT", "AT")
}

// TestReadOnly checks that a refused action is quiet and harmless.
func TestReadOnly(t *testing.T) {
	m, sel, p := setup(t, "ACGT", "AC")
	m.SetWritability(model.ReadOnly)
	sel.SetCursor(1, 0, 2)
	actions := map[string]func() (bool, error){
		"insert":    func() (bool, error) { return p.InsertToken('A') },
		"overwrite": func() (bool, error) { return p.OverwriteWithToken('A') },
		"forward":   p.DeleteForward,
		"backwards": p.DeleteBackwards,
	}
	for name, f := range actions {
		changed, err := f()
		if changed || err != nil {
			t.Errorf("%s on read only model: %v %v", name, changed, err)
		}
	}
	check(t, m, "ACGT", "AC")
	if sel.CursorColumn != 1 {
		t.Fatal("cursor moved to", sel.CursorColumn)
	}
}

func TestRowsPastEnd(t *testing.T) {
	m, sel, p := setup(t, "ACGT")
	sel.SetCursor(0, 0, 5)
	if changed, err := p.DeleteForward(); err != nil || !changed {
		t.Fatal(changed, err)
	}
	check(t, m, "CGT")
}

// TestUndoActions runs actions through a recorder. Each one is one
// undo step.
func TestUndoActions(t *testing.T) {
	m, err := model.FromStrings(tokenset.NewDNA(), "ACGTA", "ACG", "A")
	if err != nil {
		t.Fatal(err)
	}
	h := edit.NewHistory(0)
	r := edit.NewRecorder[byte](m, h)
	sel := selection.New()
	p := New[byte](r, sel)

	sel.SetCursor(0, 0, 3)
	sel.Select(2, 3)
	p.OverwriteWithToken('T')
	sel.SetCursor(5, 0, 3)
	p.InsertToken('G')
	sel.SetCursor(1, 0, 2)
	p.DeleteBackwards()
	check(t, m, "CT--G", "CT--G", "A-T--G")

	want := []string{NameDelete, NameInsert, NameOverwrite}
	for _, name := range want {
		if h.UndoName() != name {
			t.Fatalf("next undo is %q, wanted %q", h.UndoName(), name)
		}
		if err := h.Undo(); err != nil {
			t.Fatal(err)
		}
	}
	check(t, m, "ACGTA", "ACG", "A")
	for h.CanRedo() {
		h.Redo()
	}
	check(t, m, "CT--G", "CT--G", "A-T--G")
}

// TestUnknownToken checks that a token outside the set changes nothing,
// not even the padding of short rows, and leaves no undo step.
func TestUnknownToken(t *testing.T) {
	m, err := model.FromStrings(tokenset.NewDNA(), "AC", "A")
	if err != nil {
		t.Fatal(err)
	}
	h := edit.NewHistory(0)
	sel := selection.New()
	p := New[byte](edit.NewRecorder[byte](m, h), sel)

	sel.SetCursor(4, 0, 2)
	if changed, err := p.InsertToken('Z'); changed || !errors.Is(err, tokenset.ErrUnknown) {
		t.Fatal("insert of unknown token:", changed, err)
	}
	sel.SetCursor(0, 0, 2)
	sel.Select(1, 2)
	if changed, err := p.OverwriteWithToken('Z'); changed || !errors.Is(err, tokenset.ErrUnknown) {
		t.Fatal("overwrite with unknown token:", changed, err)
	}
	check(t, m, "AC", "A")
	if h.CanUndo() {
		t.Fatal("failed action left an undo step", h.UndoName())
	}
	if sel.CursorColumn != 1 || sel.Width != 2 {
		t.Fatal("selection moved", sel)
	}
}
