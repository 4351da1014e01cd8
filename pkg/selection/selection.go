// 24 Sep 2026

// Package selection describes the cursor and the selected block of an
// alignment view. The cursor spans CursorHeight rows starting at
// CursorRow. The selection is the columns [FirstColumn,
// FirstColumn+Width) of those rows. A width of zero means nothing is
// selected and only the cursor counts.
package selection

import (
	"errors"
	"fmt"
)

var ErrInvalid = errors.New("selection: negative position or size")

// Selection is a rectangle in (column, row) space.
type Selection struct {
	CursorColumn int
	CursorRow    int
	CursorHeight int
	FirstColumn  int
	Width        int
}

// New returns a cursor in the top left corner, one row high.
func New() *Selection { return &Selection{CursorHeight: 1} }

// IsEmpty is true if no columns are selected.
func (s *Selection) IsEmpty() bool { return s.Width == 0 }

// SetCursor moves the cursor and drops any selection.
func (s *Selection) SetCursor(column, row, height int) error {
	if column < 0 || row < 0 || height < 0 {
		return fmt.Errorf("%w: cursor %d,%d height %d", ErrInvalid, column, row, height)
	}
	s.CursorColumn, s.CursorRow, s.CursorHeight = column, row, height
	s.Clear()
	return nil
}

// SetCursorColumn moves the cursor along its rows and drops any
// selection.
func (s *Selection) SetCursorColumn(column int) error {
	return s.SetCursor(column, s.CursorRow, s.CursorHeight)
}

// Select marks width columns starting at first in the cursor rows.
// The cursor moves to the first selected column.
func (s *Selection) Select(first, width int) error {
	if first < 0 || width < 0 {
		return fmt.Errorf("%w: select %d wide at %d", ErrInvalid, width, first)
	}
	s.FirstColumn, s.Width = first, width
	s.CursorColumn = first
	return nil
}

// Clear drops the selection, leaving the cursor where it is.
func (s *Selection) Clear() {
	s.FirstColumn = s.CursorColumn
	s.Width = 0
}

// Rows returns the first row and one past the last row of the cursor.
func (s *Selection) Rows() (first, end int) {
	return s.CursorRow, s.CursorRow + s.CursorHeight
}

// EndColumn returns one past the last selected column.
func (s *Selection) EndColumn() int { return s.FirstColumn + s.Width }

func (s *Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("cursor %d rows %d+%d", s.CursorColumn, s.CursorRow, s.CursorHeight)
	}
	return fmt.Sprintf("columns %d+%d rows %d+%d", s.FirstColumn, s.Width, s.CursorRow, s.CursorHeight)
}
