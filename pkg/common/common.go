// 29 Apr 2020

// Package common holds the few constants shared by the commands and
// the byte alphabets.
package common

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const (
	GapChar     byte = '-' // a minus sign is always used for gaps
	MissingChar byte = '?' // missing data, not the same as a gap
)
