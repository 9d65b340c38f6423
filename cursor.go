/*
Copyright 2024 Tim St. Pierre
Cursor positioning and display memory addressing
*/
package hd44780

// First DDRAM address of the second line on two line displays
const secondRowAddress = 0x40

// SetCursor moves the cursor to the zero based row and column.
//
// Positions beyond what any HD44780U can address fail with
// ErrInvalidCellCount, positions outside the geometry given to Begin fail
// with ErrInvalidCursor.
func (d *Dev) SetCursor(row, col uint8) error {
	if row >= maxRows || col >= maxColsOneRow {
		return d.fail(ErrInvalidCellCount)
	}
	if !d.isRunning() {
		return d.fail(ErrNotRunning)
	}
	if row >= d.rows || col >= d.cols {
		return d.fail(ErrInvalidCursor)
	}
	return d.moveTo(row, col)
}

// moveTo points the address counter at (row, col) and records the position.
func (d *Dev) moveTo(row, col uint8) error {
	if err := d.command(setDDRAM(d.address(row, col))); err != nil {
		return err
	}
	d.row = row
	d.col = col
	return nil
}

// address returns the DDRAM address of (row, col). Single line displays
// only have row 0.
func (d *Dev) address(row, col uint8) byte {
	if d.rows == 2 && row == 1 {
		return secondRowAddress + col
	}
	return col
}

// Position returns the zero based row and column of the cursor.
func (d *Dev) Position() (row, col uint8) {
	return d.row, d.col
}
