// 9 Oct 2026

/*
Degap shows, for each aligned sequence, how its columns relate to the
sequence with the gaps taken out.

Sequences are given on the command line, using the one letter amino
acid codes and '-' for gaps. For each one, it prints the unaligned
length, then one line per column. A column with a residue shows that
residue's unaligned index three times. A gap column shows the index of
the residue before it, the word "gap" and the index of the residue
after it, with "out" where there is no such residue. The last line
gives the column of each residue.

Usage:
	degap [-s] [-m] sequence [sequence ...]

The flags are:
	-s
		Use the sequential translator, which keeps a cursor per
		sequence, instead of building tables.
	-m
		Build the tables in anonymous mapped memory.
*/
package main
