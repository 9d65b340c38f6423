/*
Copyright 2024 Tim St. Pierre
Controls an HD44780U character LCD wired to a GPIO register block
using a bit-banged 4 or 8 bit parallel bus
*/
package hd44780

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// Mode is the width of the data bus.
type Mode uint8

const (
	Mode4Bit Mode = 4
	Mode8Bit Mode = 8
)

// State is the lifecycle stage of a Dev.
type State uint8

const (
	StateUninitialized State = iota
	StateInitialized
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

const (
	// Supply voltage rise time before the first instruction
	powerOnDelay = 50 * time.Millisecond

	// Waits after each of the three wake up writes
	wakeDelay1 = 5 * time.Millisecond
	wakeDelay2 = 150 * time.Microsecond
	wakeDelay3 = 42 * time.Microsecond

	wakeNibble     = 0b0011
	wakeByte       = 0b00110000
	fourBitNibble  = 0b0010
	maxRows        = 2
	maxColsOneRow  = 80
	maxColsTwoRows = 40
)

// Dev is a display on a GPIO register block.
//
// A Dev is not safe for concurrent use.
type Dev struct {
	regs  Registers
	opts  Opts
	sleep func(time.Duration)

	mode  Mode
	pins  [8]uint8
	width int
	rs    uint8
	en    uint8

	rows uint8
	cols uint8
	row  uint8
	col  uint8

	initialized bool
	running     bool
	err         ErrorCode

	display displayFlags
	entry   entryFlags
	shift   int
}

// NewDev returns an unconfigured display on regs. Call Init, then Begin.
//
// Use default options if nil is used.
func NewDev(regs Registers, opts *Opts) *Dev {
	if opts == nil {
		opts = &DefaultOpts
	}
	return &Dev{
		regs:  regs,
		opts:  *opts,
		sleep: opts.sleeper(),
	}
}

// NewMem returns an unconfigured display on the register block mapped at the
// physical address base.
func NewMem(base uint64, opts *Opts) (*Dev, error) {
	regs, err := OpenMem(base)
	if err != nil {
		return nil, err
	}
	return NewDev(regs, opts), nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("hd44780{%v, %d-bit, %dx%d}", d.regs, d.mode, d.rows, d.cols)
}

// Init binds the select, enable and data pins, configures them as outputs
// and drives every data register bit low. data lists D0-D7 in 8 bit mode and
// D4-D7 in 4 bit mode.
//
// Init may be called again at any time; it discards the previous
// configuration and leaves the device in StateInitialized.
func (d *Dev) Init(mode Mode, rs, en uint8, data ...uint8) error {
	d.initialized = false
	d.running = false

	if (mode != Mode4Bit && mode != Mode8Bit) || len(data) != int(mode) {
		return d.fail(ErrInvalidMode)
	}
	mask := uint32(0)
	for _, pin := range append([]uint8{rs, en}, data...) {
		if pin >= registerWidth {
			return d.fail(ErrInvalidMode)
		}
		mask |= 1 << pin
	}

	dir, err := d.regs.ReadDirection()
	if err != nil {
		return ioError("reading direction register", err)
	}
	if err := d.regs.WriteDirection(dir &^ mask); err != nil {
		return ioError("writing direction register", err)
	}
	if err := d.regs.WriteData(0); err != nil {
		return ioError("writing data register", err)
	}

	d.mode = mode
	d.width = len(data)
	d.pins = [8]uint8{}
	copy(d.pins[:], data)
	d.rs = rs
	d.en = en
	d.initialized = true
	d.err = ErrNone
	log.Infof("%s: initialized rs=%d en=%d data=%v", d, rs, en, data)
	return nil
}

// Init4Bit binds a display wired with its D4-D7 lines.
func (d *Dev) Init4Bit(rs, en, d4, d5, d6, d7 uint8) error {
	return d.Init(Mode4Bit, rs, en, d4, d5, d6, d7)
}

// Init8Bit binds a display wired with all eight data lines.
func (d *Dev) Init8Bit(rs, en, d0, d1, d2, d3, d4, d5, d6, d7 uint8) error {
	return d.Init(Mode8Bit, rs, en, d0, d1, d2, d3, d4, d5, d6, d7)
}

// Begin sets the display geometry and runs the power on sequence. A display
// has at most 2 rows, of up to 80 columns for a single row or 40 columns for
// two rows.
func (d *Dev) Begin(rows, cols uint8) error {
	if !d.initialized {
		return d.fail(ErrNotInitialized)
	}
	if !validGeometry(rows, cols) {
		return d.fail(ErrInvalidCellCount)
	}

	d.running = false
	d.rows = rows
	d.cols = cols
	d.row = 0
	d.col = 0
	if err := d.bringUp(); err != nil {
		return err
	}
	d.running = true
	log.Infof("%s: running", d)
	return nil
}

func validGeometry(rows, cols uint8) bool {
	switch rows {
	case 1:
		return cols > 0 && cols <= maxColsOneRow
	case maxRows:
		return cols > 0 && cols <= maxColsTwoRows
	}
	return false
}

// bringUp is the initialization by instruction sequence of the datasheet.
func (d *Dev) bringUp() error {
	d.sleep(powerOnDelay)

	// The wake up writes go to the instruction register
	if err := d.setPin(d.rs, false); err != nil {
		return err
	}
	wake, n := byte(wakeNibble), 4
	if d.mode == Mode8Bit {
		wake, n = wakeByte, 8
	}
	for _, wait := range []time.Duration{wakeDelay1, wakeDelay2, wakeDelay3} {
		if err := d.writeBits(wake, n); err != nil {
			return err
		}
		d.sleep(wait)
	}

	var function functionFlags
	if d.mode == Mode4Bit {
		// Still an 8 bit interface until this single nibble lands
		if err := d.writeBits(fourBitNibble, 4); err != nil {
			return err
		}
	} else {
		function |= function8Bit
	}
	if d.rows == 2 {
		function |= functionTwoLines
	} else if d.opts.Font5x10 {
		function |= function5x10Dots
	}
	if err := d.command(function.instruction()); err != nil {
		return err
	}

	display := displayOn
	if d.opts.Cursor {
		display |= displayCursor
	}
	if d.opts.Blink {
		display |= displayBlink
	}
	if err := d.setDisplayControl(display); err != nil {
		return err
	}
	if err := d.clear(); err != nil {
		return err
	}
	return d.setEntryMode(entryIncrement)
}

func (d *Dev) setDisplayControl(f displayFlags) error {
	if err := d.command(f.instruction()); err != nil {
		return err
	}
	d.display = f
	return nil
}

func (d *Dev) setEntryMode(f entryFlags) error {
	if err := d.command(f.instruction()); err != nil {
		return err
	}
	d.entry = f
	return nil
}

// State reports the lifecycle stage of the device.
func (d *Dev) State() State {
	switch {
	case d.running && d.initialized:
		return StateRunning
	case d.initialized:
		return StateInitialized
	}
	return StateUninitialized
}

func (d *Dev) isRunning() bool {
	return d.running && d.initialized
}

// Mode returns the configured bus width.
func (d *Dev) Mode() Mode {
	return d.mode
}
