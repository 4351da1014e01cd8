// 16 Sep 2026

// Package tokenset describes the tokens that may appear in an
// alignment. A set is either discrete (nucleotides, amino acids, any
// enumerable alphabet) or continuous (real valued characters), and
// always knows its gap token and its missing data token.
package tokenset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andrew-torda/alnedit/pkg/common"
)

// Unlimited is the size of a continuous token set.
const Unlimited = -1

var (
	ErrContinuous = errors.New("tokenset: continuous token set cannot be enumerated or changed")
	ErrUnknown    = errors.New("tokenset: unknown token")
	ErrReserved   = errors.New("tokenset: gap and missing tokens cannot be removed")
)

// Kind says what sort of tokens a set holds.
type Kind byte

const (
	Discrete Kind = iota // an arbitrary enumerable alphabet
	DNA
	RNA
	AminoAcid
	Continuous
)

func (k Kind) String() string {
	switch k {
	case Discrete:
		return "discrete"
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	case AminoAcid:
		return "amino acid"
	case Continuous:
		return "continuous"
	}
	return fmt.Sprintf("Kind(%d)", byte(k))
}

// Set is the domain of valid tokens for one alignment.
type Set[T comparable] struct {
	kind    Kind
	gap     T
	missing T
	tokens  []T       // discrete sets only, in insertion order
	index   map[T]int // position in tokens
	format  func(T) string
	parse   func(string) (T, error)
}

// NewDiscrete makes an enumerable set. The gap and missing tokens are
// always members and come first. format turns a token into its
// representation; tokens are looked up by that representation.
func NewDiscrete[T comparable](gap, missing T, format func(T) string, tokens ...T) *Set[T] {
	s := &Set[T]{kind: Discrete, gap: gap, missing: missing, format: format,
		index: make(map[T]int)}
	s.add(gap)
	s.add(missing)
	for _, t := range tokens {
		s.add(t)
	}
	return s
}

// NewContinuous makes a set that accepts every value. parse turns a
// representation back into a token.
func NewContinuous[T comparable](gap, missing T, format func(T) string,
	parse func(string) (T, error)) *Set[T] {
	return &Set[T]{kind: Continuous, gap: gap, missing: missing,
		format: format, parse: parse}
}

// Kind returns the kind of tokens held.
func (s *Set[T]) Kind() Kind { return s.kind }

// Gap returns the gap token.
func (s *Set[T]) Gap() T { return s.gap }

// Missing returns the missing data token.
func (s *Set[T]) Missing() T { return s.missing }

// IsGap is true if t is the gap token.
func (s *Set[T]) IsGap(t T) bool { return t == s.gap }

// IsContinuous is true for sets with no fixed list of tokens.
func (s *Set[T]) IsContinuous() bool { return s.kind == Continuous }

// Len returns the number of tokens, including gap and missing, or
// Unlimited for a continuous set.
func (s *Set[T]) Len() int {
	if s.IsContinuous() {
		return Unlimited
	}
	return len(s.tokens)
}

// Contains says whether t may appear in the alignment.
func (s *Set[T]) Contains(t T) bool {
	if s.IsContinuous() {
		return true
	}
	_, ok := s.index[t]
	return ok
}

// Index returns the position of t in Tokens, or -1.
func (s *Set[T]) Index(t T) int {
	if i, ok := s.index[t]; ok {
		return i
	}
	return -1
}

// Tokens returns a copy of the members of a discrete set.
func (s *Set[T]) Tokens() ([]T, error) {
	if s.IsContinuous() {
		return nil, ErrContinuous
	}
	return append([]T(nil), s.tokens...), nil
}

// Add puts t in the set. Adding a member again does nothing.
func (s *Set[T]) Add(t T) error {
	if s.IsContinuous() {
		return ErrContinuous
	}
	s.add(t)
	return nil
}

func (s *Set[T]) add(t T) {
	if _, ok := s.index[t]; ok {
		return
	}
	s.index[t] = len(s.tokens)
	s.tokens = append(s.tokens, t)
}

// Remove takes t out of the set.
func (s *Set[T]) Remove(t T) error {
	if s.IsContinuous() {
		return ErrContinuous
	}
	if t == s.gap || t == s.missing {
		return ErrReserved
	}
	i, ok := s.index[t]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, s.Repr(t))
	}
	s.tokens = append(s.tokens[:i], s.tokens[i+1:]...)
	delete(s.index, t)
	for j := i; j < len(s.tokens); j++ {
		s.index[s.tokens[j]] = j
	}
	return nil
}

// Repr returns the representation of a token.
func (s *Set[T]) Repr(t T) string {
	if s.format == nil {
		return fmt.Sprint(t)
	}
	return s.format(t)
}

// Token returns the token with representation r.
func (s *Set[T]) Token(r string) (T, error) {
	if s.IsContinuous() {
		switch r {
		case s.Repr(s.gap):
			return s.gap, nil
		case s.Repr(s.missing):
			return s.missing, nil
		}
		if s.parse != nil {
			return s.parse(r)
		}
	} else {
		for _, t := range s.tokens {
			if s.Repr(t) == r {
				return t, nil
			}
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %q", ErrUnknown, r)
}

// Chars is a set of single byte tokens.
type Chars = Set[byte]

const (
	dnaSyms     = "ACGTRYKMSWBDHVN"
	rnaSyms     = "ACGURYKMSWBDHVN"
	proteinSyms = "ACDEFGHIKLMNPQRSTVWYBZJUOX*"
)

func charRepr(c byte) string { return string(c) }

// NewChars makes a discrete set of byte tokens from the characters in
// symbols. Upper and lower case are different tokens. The gap is '-'
// and missing data is '?'.
func NewChars(symbols string) *Chars {
	s := NewDiscrete(common.GapChar, common.MissingChar, charRepr, []byte(symbols)...)
	return s
}

// NewDNA returns the IUPAC nucleotide alphabet with T.
func NewDNA() *Chars {
	s := NewChars(dnaSyms + strings.ToLower(dnaSyms))
	s.kind = DNA
	return s
}

// NewRNA returns the IUPAC nucleotide alphabet with U.
func NewRNA() *Chars {
	s := NewChars(rnaSyms + strings.ToLower(rnaSyms))
	s.kind = RNA
	return s
}

// NewProtein returns the amino acid alphabet with ambiguity codes and
// the stop symbol.
func NewProtein() *Chars {
	s := NewChars(proteinSyms + strings.ToLower(proteinSyms[:len(proteinSyms)-1]))
	s.kind = AminoAcid
	return s
}
