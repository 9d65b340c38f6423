/*
Copyright 2024 Tim St. Pierre
periph.io text display interface
*/
package hd44780

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
)

// Enable/Disable shifting the display on every character written.
//
// The recorded cursor is not adjusted for the shift; call ResetView to bring
// the window back.
func (d *Dev) AutoScroll(enabled bool) error {
	if !d.isRunning() {
		return d.fail(ErrNotRunning)
	}
	entry := d.entry &^ entryDisplayShift
	if enabled {
		entry |= entryDisplayShift
	}
	return d.setEntryMode(entry)
}

// Return the number of columns the display was started with
func (d *Dev) Cols() int {
	return int(d.cols)
}

// Return the number of rows the display was started with
func (d *Dev) Rows() int {
	return int(d.rows)
}

// Return the min column position.
func (d *Dev) MinCol() int {
	return 1
}

// Return the min row position.
func (d *Dev) MinRow() int {
	return 1
}

// Set the cursor mode. You can pass multiple arguments.
// Cursor(CursorUnderline, CursorBlink)
func (d *Dev) Cursor(modes ...display.CursorMode) error {
	if !d.isRunning() {
		return d.fail(ErrNotRunning)
	}
	f := d.display &^ (displayCursor | displayBlink)
	for _, mode := range modes {
		switch mode {
		case display.CursorOff:
			f &^= displayCursor | displayBlink
		case display.CursorUnderline:
			f |= displayCursor
		case display.CursorBlock, display.CursorBlink:
			f |= displayBlink
		default:
			return fmt.Errorf("hd44780: unexpected cursor mode %d", mode)
		}
	}
	return d.setDisplayControl(f)
}

// Turn the display on / off. Display memory is kept while off.
func (d *Dev) Display(on bool) error {
	if !d.isRunning() {
		return d.fail(ErrNotRunning)
	}
	f := d.display &^ displayOn
	if on {
		f |= displayOn
	}
	return d.setDisplayControl(f)
}

// Move the cursor and the window home.
func (d *Dev) Home() error {
	if !d.isRunning() {
		return d.fail(ErrNotRunning)
	}
	if err := d.returnHome(); err != nil {
		return err
	}
	d.row = 0
	d.col = 0
	return nil
}

// Move the cursor one cell in dir.
func (d *Dev) Move(dir display.CursorDirection) error {
	row, col := int(d.row), int(d.col)
	switch dir {
	case display.Backward:
		col--
	case display.Forward:
		col++
	case display.Up:
		row--
	case display.Down:
		row++
	default:
		return fmt.Errorf("hd44780: unexpected direction %d", dir)
	}
	if row < 0 || col < 0 {
		return d.fail(ErrInvalidCursor)
	}
	return d.SetCursor(uint8(row), uint8(col))
}

// Move the cursor to a one based position, (MinRow(), MinCol()) is the top
// left cell.
func (d *Dev) MoveTo(row, col int) error {
	if row < d.MinRow() || col < d.MinCol() {
		return d.fail(ErrInvalidCursor)
	}
	if row > maxRows || col > maxColsOneRow {
		return d.fail(ErrInvalidCellCount)
	}
	return d.SetCursor(uint8(row-1), uint8(col-1))
}

// Halt turns the display off. It is a noop unless the display is running.
func (d *Dev) Halt() error {
	if !d.isRunning() {
		return nil
	}
	return d.Display(false)
}

var _ display.TextDisplay = &Dev{}
var _ conn.Resource = &Dev{}
