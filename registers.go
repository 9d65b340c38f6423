/*
Copyright 2024 Tim St. Pierre
Register block access for the GPIO bank driving the display
*/
package hd44780

import (
	"encoding/binary"
	"fmt"
	"sync/atomic"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/mmr"
	"periph.io/x/host/v3/pmem"
)

const (
	// Register addresses used by NewI2CRegisters
	DataReg = 0x00
	DirReg  = 0x04

	// Width of the data and direction registers in bits
	registerWidth = 32
)

// Registers is the two word register block of a GPIO bank: an output data
// register and a pin direction register. A cleared direction bit configures
// the pin as an output.
//
// Implementations must perform every call as exactly one access to the
// hardware, in the order the calls are made.
type Registers interface {
	ReadData() (uint32, error)
	WriteData(v uint32) error
	ReadDirection() (uint32, error)
	WriteDirection(v uint32) error
}

// regBlock mirrors the hardware layout: word 0 is data, word 1 is direction.
type regBlock struct {
	data uint32
	dir  uint32
}

// MemRegisters accesses a register block mapped from physical memory.
type MemRegisters struct {
	base uint64
	regs *regBlock
}

// OpenMem maps the register block located at the physical address base.
//
// The process needs access to /dev/mem.
func OpenMem(base uint64) (*MemRegisters, error) {
	m := &MemRegisters{base: base}
	if err := pmem.MapAsPOD(base, &m.regs); err != nil {
		return nil, fmt.Errorf("hd44780: mapping registers at %#x: %w", base, err)
	}
	return m, nil
}

func (m *MemRegisters) String() string {
	return fmt.Sprintf("mem@%#x", m.base)
}

// Atomic loads and stores keep the compiler from merging or dropping
// accesses to the mapped words.

func (m *MemRegisters) ReadData() (uint32, error) {
	return atomic.LoadUint32(&m.regs.data), nil
}

func (m *MemRegisters) WriteData(v uint32) error {
	atomic.StoreUint32(&m.regs.data, v)
	return nil
}

func (m *MemRegisters) ReadDirection() (uint32, error) {
	return atomic.LoadUint32(&m.regs.dir), nil
}

func (m *MemRegisters) WriteDirection(v uint32) error {
	atomic.StoreUint32(&m.regs.dir, v)
	return nil
}

// BusRegisters accesses a register block exposed by a device on a bus, for
// example a GPIO expander or an FPGA bridge behind I²C.
type BusRegisters struct {
	c       mmr.Dev8
	dataReg uint8
	dirReg  uint8
}

// NewBusRegisters returns the register block behind c. Words are 32 bits
// little endian.
func NewBusRegisters(c conn.Conn, dataReg, dirReg uint8) *BusRegisters {
	return &BusRegisters{
		c:       mmr.Dev8{Conn: c, Order: binary.LittleEndian},
		dataReg: dataReg,
		dirReg:  dirReg,
	}
}

// NewI2CRegisters returns the register block of the I²C device at addr, with
// the data word at DataReg and the direction word at DirReg.
func NewI2CRegisters(b i2c.Bus, addr uint16) *BusRegisters {
	return NewBusRegisters(&i2c.Dev{Bus: b, Addr: addr}, DataReg, DirReg)
}

func (r *BusRegisters) String() string {
	return fmt.Sprintf("bus{%s}", r.c.Conn)
}

func (r *BusRegisters) ReadData() (uint32, error) {
	return r.c.ReadUint32(r.dataReg)
}

func (r *BusRegisters) WriteData(v uint32) error {
	return r.c.WriteUint32(r.dataReg, v)
}

func (r *BusRegisters) ReadDirection() (uint32, error) {
	return r.c.ReadUint32(r.dirReg)
}

func (r *BusRegisters) WriteDirection(v uint32) error {
	return r.c.WriteUint32(r.dirReg, v)
}

var _ Registers = &MemRegisters{}
var _ Registers = &BusRegisters{}
