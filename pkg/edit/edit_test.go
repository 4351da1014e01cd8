package edit_test

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/alnedit/pkg/edit"
	"github.com/andrew-torda/alnedit/pkg/model"
	"github.com/andrew-torda/alnedit/pkg/tokenset"
)

func mustModel(t *testing.T, rows ...string) *model.List[byte] {
	t.Helper()
	m, err := model.FromStrings(tokenset.NewDNA(), rows...)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

// state is everything an edit could change.
type state struct {
	IDs   []string
	Names []string
	Rows  []string
}

func snapshot(m model.Reader[byte]) state {
	var s state
	s.IDs = m.SequenceIDs()
	for _, id := range s.IDs {
		name, _ := m.SequenceName(id)
		s.Names = append(s.Names, name)
		s.Rows = append(s.Rows, model.String(m, id))
	}
	return s
}

// TestReversible runs each kind of edit forwards and back and checks
// nothing is left over.
func TestReversible(t *testing.T) {
	type maker func(m model.Model[byte]) (*Edit[byte], error)
	tests := []struct {
		name  string
		make  maker
		after []string
	}{
		{"insert", func(m model.Model[byte]) (*Edit[byte], error) {
			return NewInsertTokens(m, "s0", 2, []byte("TT"))
		}, []string{"ACTTGT", "GG"}},
		{"remove", func(m model.Model[byte]) (*Edit[byte], error) {
			return NewRemoveTokens(m, "s0", 1, 3)
		}, []string{"AT", "GG"}},
		{"set", func(m model.Model[byte]) (*Edit[byte], error) {
			return NewSetTokens(m, "s0", 1, []byte("--"))
		}, []string{"A--T", "GG"}},
		{"add sequence", func(m model.Model[byte]) (*Edit[byte], error) {
			return NewAddSequence(m, 1, "new", "new one", []byte("C"))
		}, []string{"ACGT", "C", "GG"}},
		{"remove sequence", func(m model.Model[byte]) (*Edit[byte], error) {
			return NewRemoveSequence(m, "s0")
		}, []string{"GG"}},
		{"rename", func(m model.Model[byte]) (*Edit[byte], error) {
			return NewRenameSequence(m, "s1", "other")
		}, []string{"ACGT", "GG"}},
	}
	for _, tt := range tests {
		m := mustModel(t, "ACGT", "GG")
		before := snapshot(m)
		e, err := tt.make(m)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		for round := 0; round < 2; round++ {
			if err := e.Redo(); err != nil {
				t.Fatalf("%s redo: %v", tt.name, err)
			}
			if diff := cmp.Diff(tt.after, model.Strings(m)); diff != "" {
				t.Fatalf("%s after redo (-want +got):\n%s", tt.name, diff)
			}
			if err := e.Undo(); err != nil {
				t.Fatalf("%s undo: %v", tt.name, err)
			}
			if diff := cmp.Diff(before, snapshot(m)); diff != "" {
				t.Fatalf("%s round %d not reversed (-want +got):\n%s", tt.name, round, diff)
			}
		}
	}
}

// TestCombinedOrder has a removal that only makes sense after the
// insertion before it. Undo must take them back in reverse order.
func TestCombinedOrder(t *testing.T) {
	m := mustModel(t, "GGG")
	before := snapshot(m)
	ins, err := NewInsertTokens(m, "s0", 0, []byte("AC"))
	if err != nil {
		t.Fatal(err)
	}
	rem, err := NewRemoveTokens(m, "s0", 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	c := NewCombined("Typing", ins, rem)
	for round := 0; round < 3; round++ {
		if err := c.Redo(); err != nil {
			t.Fatal(err)
		}
		if got := model.String(m, "s0"); got != "CGGG" {
			t.Fatal("after redo got", got)
		}
		if err := c.Undo(); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(before, snapshot(m)); diff != "" {
			t.Fatalf("round %d (-want +got):\n%s", round, diff)
		}
	}
	if c.PresentationName() != "Typing" || c.Len() != 2 {
		t.Fatal("combined edit is", c.PresentationName(), c.Len())
	}
}

// TestCombinedRollback makes the second step of a batch fail.
func TestCombinedRollback(t *testing.T) {
	m := mustModel(t, "ACGT")
	ins, _ := NewInsertTokens(m, "s0", 0, []byte("GG"))
	rem, _ := NewRemoveTokens(m, "s0", 3, 4)
	c := NewCombined("x", ins, rem)
	m.RemoveTokensAt("s0", 0, 4) // now rem cannot work, even after ins
	if err := c.Redo(); !errors.Is(err, model.ErrIndexOutOfRange) {
		t.Fatal("redo should fail, got", err)
	}
	if got := model.String(m, "s0"); got != "" {
		t.Fatal("failed redo left", got)
	}
}

func TestNotWritable(t *testing.T) {
	m := mustModel(t, "ACGT")
	m.SetWritability(model.ReadOnly)
	if _, err := NewInsertTokens(m, "s0", 0, []byte("A")); !errors.Is(err, model.ErrNotWritable) {
		t.Error("insert got", err)
	}
	if _, err := NewRemoveTokens(m, "s0", 0, 1); !errors.Is(err, model.ErrNotWritable) {
		t.Error("remove got", err)
	}
	if _, err := NewSetTokens(m, "s0", 0, []byte("A")); !errors.Is(err, model.ErrNotWritable) {
		t.Error("set got", err)
	}
	if _, err := NewRemoveSequence(m, "s0"); !errors.Is(err, model.ErrNotWritable) {
		t.Error("remove sequence got", err)
	}
	m.SetWritability(model.SequencesOnly)
	if _, err := NewRenameSequence(m, "s0", "x"); err != nil {
		t.Error("rename should be allowed, got", err)
	}
	if _, err := NewInsertTokens(m, "s0", 0, []byte("A")); !errors.Is(err, model.ErrNotWritable) {
		t.Error("insert into sequences only model got", err)
	}
}

func TestBadArguments(t *testing.T) {
	m := mustModel(t, "ACGT")
	if _, err := NewSetTokensEdit(m, "s0", 0, []byte("AC"), []byte("A")); !errors.Is(err, ErrInvalidArgument) {
		t.Error("mismatched sizes got", err)
	}
	if _, err := NewRemoveTokens(m, "s0", 2, 9); !errors.Is(err, model.ErrIndexOutOfRange) {
		t.Error("range past end got", err)
	}
	if _, err := NewInsertTokens(m, "none", 0, []byte("A")); !errors.Is(err, model.ErrNoSequence) {
		t.Error("unknown sequence got", err)
	}
	if _, err := NewAddSequence(m, 0, "s0", "dup", nil); !errors.Is(err, model.ErrDuplicateID) {
		t.Error("duplicate ID got", err)
	}
	unknown := map[string]func() (*Edit[byte], error){
		"insert":       func() (*Edit[byte], error) { return NewInsertTokens(m, "s0", 0, []byte("AZ")) },
		"set":          func() (*Edit[byte], error) { return NewSetTokens(m, "s0", 1, []byte("Z")) },
		"set edit":     func() (*Edit[byte], error) { return NewSetTokensEdit(m, "s0", 0, []byte("A"), []byte("Z")) },
		"add sequence": func() (*Edit[byte], error) { return NewAddSequence(m, 1, "new", "new", []byte("Z")) },
	}
	for name, f := range unknown {
		if e, err := f(); e != nil || !errors.Is(err, tokenset.ErrUnknown) {
			t.Errorf("%s with unknown token got %v %v", name, e, err)
		}
	}
	if got := model.Strings(m); len(got) != 1 || got[0] != "ACGT" {
		t.Error("model changed:", got)
	}
}

func TestHistory(t *testing.T) {
	m := mustModel(t, "A")
	h := NewHistory(2)
	for _, c := range []byte("CGT") {
		e, _ := NewInsertTokens(m, "s0", 1, []byte{c})
		e.Redo()
		h.AddEdit(e)
	}
	if h.Len() != 2 {
		t.Fatal("limit not kept, length", h.Len())
	}
	if err := h.Undo(); err != nil {
		t.Fatal(err)
	}
	if h.UndoName() != "Insert tokens" || h.RedoName() != "Insert tokens" {
		t.Fatal("names", h.UndoName(), h.RedoName())
	}
	h.Undo()
	if err := h.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Fatal("third undo got", err)
	}
	if got := model.String(m, "s0"); got != "AC" {
		t.Fatal("oldest edit should have been dropped, got", got)
	}
	h.Redo()
	if got := model.String(m, "s0"); got != "AGC" {
		t.Fatal("after redo", got)
	}
	e, _ := NewRemoveTokens(m, "s0", 0, 1)
	e.Redo()
	h.AddEdit(e)
	if h.CanRedo() {
		t.Fatal("new edit should clear the redo branch")
	}
	if err := h.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Fatal("redo got", err)
	}
}

func TestRecorder(t *testing.T) {
	m := mustModel(t, "ACGT", "GG")
	before := snapshot(m)
	h := NewHistory(0)
	var logged bytes.Buffer
	r := NewRecorder[byte](m, h)
	r.SetLogger(log.New(&logged, "", 0))

	r.StartEdit()
	if !r.Recording() {
		t.Fatal("not recording after StartEdit")
	}
	r.InsertTokensAt("s0", 0, 'T')
	r.RemoveTokensAt("s1", 0, 1)
	r.RemoveTokensAt("s1", 0, 0) // not recorded
	r.SetTokensAt("s0", 4, 'A')
	r.EndEdit("Paste")

	r.AppendTokens("s1", 'C') // outside a batch
	r.StartEdit()
	r.EndEdit("nothing") // empty batches are dropped

	if h.Len() != 2 {
		t.Fatal("history holds", h.Len())
	}
	if diff := cmp.Diff([]string{"TACGA", "GC"}, model.Strings(m)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if h.UndoName() != "Insert tokens" {
		t.Fatal("single edit batch named", h.UndoName())
	}
	h.Undo()
	if h.UndoName() != "Paste" {
		t.Fatal("batch named", h.UndoName())
	}
	h.Undo()
	if diff := cmp.Diff(before, snapshot(m)); diff != "" {
		t.Fatalf("undo all (-want +got):\n%s", diff)
	}
	h.Redo()
	if diff := cmp.Diff([]string{"TACGA", "G"}, model.Strings(m)); diff != "" {
		t.Fatalf("redo batch (-want +got):\n%s", diff)
	}
	if !strings.Contains(logged.String(), `sealed "Paste" with 3 edits`) {
		t.Fatal("log was", logged.String())
	}
}

// TestRecorderSequences checks sequence edits, and that a new
// StartEdit seals the batch before it.
func TestRecorderSequences(t *testing.T) {
	m := mustModel(t, "AC")
	before := snapshot(m)
	h := NewHistory(0)
	r := NewRecorder[byte](m, h)

	r.StartEdit()
	id, err := r.AddSequence("added")
	if err != nil {
		t.Fatal(err)
	}
	r.AppendTokens(id, 'G', 'G')
	r.StartEdit()
	r.RenameSequence("s0", "first")
	r.RemoveSequence(id)
	r.EndEdit("")

	if h.Len() != 2 || h.UndoName() != "Edit" {
		t.Fatal("history", h.Len(), h.UndoName())
	}
	h.Undo()
	if got := model.String(m, id); got != "GG" {
		t.Fatal("removed sequence not restored:", got)
	}
	h.Undo()
	if diff := cmp.Diff(before, snapshot(m)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	h.Redo()
	h.Redo()
	if name, _ := m.SequenceName("s0"); name != "first" || m.SequenceCount() != 1 {
		t.Fatal("redo gave", name, m.SequenceCount())
	}
}

func TestRecorderReadOnly(t *testing.T) {
	m := mustModel(t, "AC")
	m.SetWritability(model.ReadOnly)
	h := NewHistory(0)
	r := NewRecorder[byte](m, h)
	r.StartEdit()
	if err := r.InsertTokensAt("s0", 0, 'A'); !errors.Is(err, model.ErrNotWritable) {
		t.Fatal("got", err)
	}
	if err := r.RemoveTokensAt("s0", 0, 0); !errors.Is(err, model.ErrNotWritable) {
		t.Fatal("empty removal got", err)
	}
	r.EndEdit("x")
	if h.CanUndo() {
		t.Fatal("refused write was recorded")
	}
}

// step is an Undoable that fails on demand.
type step struct {
	redoErr, undoErr error
}

func (s step) Redo() error              { return s.redoErr }
func (s step) Undo() error              { return s.undoErr }
func (s step) PresentationName() string { return "step" }

// TestCombinedRollbackFails checks that errors from a failed rollback
// are reported along with the error that started it.
func TestCombinedRollbackFails(t *testing.T) {
	errFirst := errors.New("first step cannot undo")
	errSecond := errors.New("second step cannot redo")
	c := NewCombined("x", step{undoErr: errFirst}, step{redoErr: errSecond})
	err := c.Redo()
	if !errors.Is(err, errSecond) || !errors.Is(err, errFirst) {
		t.Fatal("redo got", err)
	}

	errUndo := errors.New("first step cannot undo")
	errRedo := errors.New("second step cannot redo")
	c = NewCombined("y", step{undoErr: errUndo}, step{redoErr: errRedo})
	err = c.Undo()
	if !errors.Is(err, errUndo) || !errors.Is(err, errRedo) {
		t.Fatal("undo got", err)
	}
	if err := NewCombined("z", step{}, step{}).Undo(); err != nil {
		t.Fatal("clean undo got", err)
	}
}
