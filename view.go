/*
Copyright 2024 Tim St. Pierre
Display window shifting
*/
package hd44780

// ShiftViewLeft moves the visible window one cell to the left over display
// memory. The contents move right; the recorded cursor does not change.
func (d *Dev) ShiftViewLeft() error {
	return d.shiftView(shiftDisplay|shiftRight, -1)
}

// ShiftViewRight moves the visible window one cell to the right over display
// memory.
func (d *Dev) ShiftViewRight() error {
	return d.shiftView(shiftDisplay, 1)
}

func (d *Dev) shiftView(f shiftFlags, delta int) error {
	if !d.isRunning() {
		return d.fail(ErrNotRunning)
	}
	if err := d.command(f.instruction()); err != nil {
		return err
	}
	d.shift += delta
	return nil
}

// ViewOffset returns how many cells the window has been shifted right of its
// home position since the last ResetView, Clear or Home.
func (d *Dev) ViewOffset() int {
	return d.shift
}

// ResetView undoes every shift, then restores the address counter that
// return home cleared so writing continues at the recorded cursor.
func (d *Dev) ResetView() error {
	if !d.isRunning() {
		return d.fail(ErrNotRunning)
	}
	if err := d.returnHome(); err != nil {
		return err
	}
	// The cursor may sit one past the last cell once the display is full
	return d.moveTo(d.row, d.col)
}

func (d *Dev) returnHome() error {
	if err := d.command(byte(instReturnHome)); err != nil {
		return err
	}
	d.sleep(clearDelay)
	d.shift = 0
	return nil
}

// Clear blanks the display and moves the cursor to (0, 0).
func (d *Dev) Clear() error {
	if !d.isRunning() {
		return d.fail(ErrNotRunning)
	}
	return d.clear()
}

func (d *Dev) clear() error {
	if err := d.command(byte(instClearDisplay)); err != nil {
		return err
	}
	d.sleep(clearDelay)
	d.row = 0
	d.col = 0
	d.shift = 0
	return nil
}
