/*
Copyright 2024 Tim St. Pierre
Text output with line wrapping
*/
package hd44780

// WriteChar writes ch at the cursor and advances it, wrapping to the start of
// the next row at the end of a line. Once the last cell of the last row is
// written, further writes fail with ErrNoSpace.
func (d *Dev) WriteChar(ch byte) error {
	if !d.isRunning() {
		return d.fail(ErrNotRunning)
	}
	if d.row >= d.rows-1 && d.col >= d.cols {
		return d.fail(ErrNoSpace)
	}
	if err := d.send(ch, selectData); err != nil {
		return err
	}
	d.col++
	if d.col >= d.cols && d.row+1 < d.rows {
		return d.SetCursor(d.row+1, 0)
	}
	return nil
}

// WriteMessage writes text one byte at a time, stopping at the first failure.
func (d *Dev) WriteMessage(text string) error {
	if !d.isRunning() {
		return d.fail(ErrNotRunning)
	}
	for i := 0; i < len(text); i++ {
		if err := d.WriteChar(text[i]); err != nil {
			return err
		}
	}
	return nil
}

// WriteInt writes v in decimal.
func (d *Dev) WriteInt(v int32) error {
	// 10 digits hold any int32
	var digits [10]byte
	n := 0
	neg := v < 0
	for {
		// Remainders share the sign of v, so MinInt32 never gets negated
		r := v % 10
		if neg {
			r = -r
		}
		digits[n] = byte(r)
		n++
		v /= 10
		if v == 0 || n == len(digits) {
			break
		}
	}

	if neg {
		if err := d.WriteChar('-'); err != nil {
			return err
		}
	}
	for n--; n >= 0; n-- {
		if err := d.WriteChar('0' + digits[n]); err != nil {
			return err
		}
	}
	return nil
}

// Write implements io.Writer. It returns the number of bytes placed on the
// display before the first failure.
func (d *Dev) Write(p []byte) (n int, err error) {
	if !d.isRunning() {
		return 0, d.fail(ErrNotRunning)
	}
	for _, c := range p {
		if err = d.WriteChar(c); err != nil {
			return
		}
		n++
	}
	return
}

// WriteString implements io.StringWriter.
func (d *Dev) WriteString(text string) (int, error) {
	return d.Write([]byte(text))
}
