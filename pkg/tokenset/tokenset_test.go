package tokenset_test

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/andrew-torda/alnedit/pkg/tokenset"
)

func TestDNA(t *testing.T) {
	s := NewDNA()
	if s.Kind() != DNA {
		t.Fatal("wrong kind", s.Kind())
	}
	if s.Gap() != '-' || s.Missing() != '?' {
		t.Fatalf("gap %c missing %c", s.Gap(), s.Missing())
	}
	for _, c := range []byte("ACGTacgtN-?") {
		if !s.Contains(c) {
			t.Errorf("DNA should contain %c", c)
		}
	}
	if s.Contains('U') || s.Contains('E') {
		t.Error("DNA should not contain U or E")
	}
	if tok, err := s.Token("G"); err != nil || tok != 'G' {
		t.Fatal("Token(G) got", tok, err)
	}
	if _, err := s.Token("Z"); !errors.Is(err, ErrUnknown) {
		t.Fatal("Token(Z) should fail, got", err)
	}
}

func TestAddRemove(t *testing.T) {
	s := NewChars("AB")
	n := s.Len()
	if err := s.Add('C'); err != nil {
		t.Fatal(err)
	}
	if s.Len() != n+1 || s.Index('C') != n {
		t.Fatalf("after Add: len %d index %d", s.Len(), s.Index('C'))
	}
	if err := s.Remove('A'); err != nil {
		t.Fatal(err)
	}
	if s.Contains('A') || s.Index('C') != n-1 {
		t.Fatalf("after Remove: contains A %v, index of C %d", s.Contains('A'), s.Index('C'))
	}
	if err := s.Remove('-'); !errors.Is(err, ErrReserved) {
		t.Fatal("removing the gap should fail, got", err)
	}
	if err := s.Remove('X'); !errors.Is(err, ErrUnknown) {
		t.Fatal("removing a stranger should fail, got", err)
	}
}

func TestContinuous(t *testing.T) {
	format := func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
	parse := func(r string) (float64, error) { return strconv.ParseFloat(r, 64) }
	s := NewContinuous(-1.0, -2.0, format, parse)
	if s.Len() != Unlimited {
		t.Fatal("continuous set has size", s.Len())
	}
	if !s.Contains(3.25) {
		t.Fatal("continuous set should accept anything")
	}
	if err := s.Add(1.5); !errors.Is(err, ErrContinuous) {
		t.Fatal("Add should fail, got", err)
	}
	if err := s.Remove(1.5); !errors.Is(err, ErrContinuous) {
		t.Fatal("Remove should fail, got", err)
	}
	if _, err := s.Tokens(); !errors.Is(err, ErrContinuous) {
		t.Fatal("Tokens should fail, got", err)
	}
	if v, err := s.Token("2.5"); err != nil || v != 2.5 {
		t.Fatal("Token(2.5) got", v, err)
	}
	if v, _ := s.Token("-1"); v != s.Gap() {
		t.Fatal("gap not resolved, got", v)
	}
}
