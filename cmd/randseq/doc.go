// 31 July 2020

/*
Randseq is for making random aligned sequences for testing the code.
Usage:
	randseq [options] fname nseq length
will generate nseq protein sequences of length length and write them to
fname, one per line. If fname is "-", it writes to standard output.

Flags:
	-g
		no gaps in the output sequences
	-f fraction
		fraction of sites that are gaps. The default is about one in 80.
	-e
		sequences will not all be the same length
	-r
		random number seed

The lines can be given straight to degap or squash.
*/
package main
