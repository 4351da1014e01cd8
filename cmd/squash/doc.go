// 20 April 2020
// 27 april 2020

/*
Squash removes columns from a multiple sequence alignment

We take some aligned sequences and a reference sequence. From every
sequence, remove any column which corresponds to a gap in the
reference. The sequences are given on the command line, one argument
each, using the one letter amino acid codes and '-' for a gap.

Usage:
	squash [-n ref] [-u] sequence [sequence ...]

The flags are:
	-n ref
		Number of the reference sequence. The first is 1, which is
		also the default, since the first sequence is very often the
		reference.
	-u
		After printing the result, undo the squash and check that every
		sequence is back as it was.

Sequences need not all be the same length. A short sequence simply
loses whatever it has of the squashed columns.
*/
package main
