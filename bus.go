/*
Copyright 2024 Tim St. Pierre
Bit-banged parallel bus to the controller
*/
package hd44780

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	// Enable must be held low then high for at least this long
	enablePulseWidth = 1 * time.Microsecond
	// Instruction execution time, the bus must not be used before it elapses
	executionDelay = 42 * time.Microsecond
	// Clear display and return home take longer to execute
	clearDelay = 1520 * time.Microsecond
)

type registerSelect bool

const (
	selectCommand registerSelect = false
	selectData    registerSelect = true
)

func (d *Dev) command(data byte) error {
	return d.send(data, selectCommand)
}

// send transfers one byte to the instruction or data register.
func (d *Dev) send(data byte, rs registerSelect) error {
	log.Debugf("hd44780: writing %08b %#02x rs=%t", data, data, rs)
	if err := d.setPin(d.rs, bool(rs)); err != nil {
		return err
	}
	if d.mode == Mode8Bit {
		return d.writeBits(data, d.width)
	}
	// High nibble first
	if err := d.writeBits(data>>4, 4); err != nil {
		return err
	}
	return d.writeBits(data&0x0F, 4)
}

// writeBits places the low n bits of data on the first n data pins with a
// single register write, then latches them.
func (d *Dev) writeBits(data byte, n int) error {
	out, err := d.regs.ReadData()
	if err != nil {
		return ioError("reading data register", err)
	}
	for i := 0; i < n; i++ {
		mask := uint32(1) << d.pins[i]
		if data&(1<<i) != 0 {
			out |= mask
		} else {
			out &^= mask
		}
	}
	if err := d.regs.WriteData(out); err != nil {
		return ioError("writing data register", err)
	}
	return d.pulseEnable()
}

// pulseEnable strobes the enable pin and waits for the controller to
// execute the latched transfer.
func (d *Dev) pulseEnable() error {
	if err := d.setPin(d.en, false); err != nil {
		return err
	}
	d.sleep(enablePulseWidth)
	if err := d.setPin(d.en, true); err != nil {
		return err
	}
	d.sleep(enablePulseWidth)
	if err := d.setPin(d.en, false); err != nil {
		return err
	}
	d.sleep(executionDelay)
	return nil
}

func (d *Dev) setPin(pin uint8, high bool) error {
	out, err := d.regs.ReadData()
	if err != nil {
		return ioError("reading data register", err)
	}
	if high {
		out |= 1 << pin
	} else {
		out &^= 1 << pin
	}
	if err := d.regs.WriteData(out); err != nil {
		return ioError("writing data register", err)
	}
	return nil
}

func ioError(op string, err error) error {
	return fmt.Errorf("hd44780: %s: %w", op, err)
}
