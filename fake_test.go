/*
Copyright 2024 Tim St. Pierre
Test doubles for the register block
*/
package hd44780

import (
	"errors"
	"testing"
	"time"
)

// event is one register write or one sleep, in program order.
type event struct {
	data  uint32
	sleep time.Duration
	isDir bool
	write bool
}

// fakeRegisters records every access and the data word latched on each
// falling edge of the enable pin.
type fakeRegisters struct {
	data    uint32
	dir     uint32
	enMask  uint32
	events  []event
	latches []uint32
	failAt  int // fail the n-th data write, 0 never
	writes  int
}

var errBus = errors.New("bus fault")

func (f *fakeRegisters) ReadData() (uint32, error) {
	return f.data, nil
}

func (f *fakeRegisters) WriteData(v uint32) error {
	f.writes++
	if f.failAt != 0 && f.writes == f.failAt {
		return errBus
	}
	if f.data&f.enMask != 0 && v&f.enMask == 0 {
		f.latches = append(f.latches, v)
	}
	f.data = v
	f.events = append(f.events, event{data: v, write: true})
	return nil
}

func (f *fakeRegisters) ReadDirection() (uint32, error) {
	return f.dir, nil
}

func (f *fakeRegisters) WriteDirection(v uint32) error {
	f.dir = v
	f.events = append(f.events, event{data: v, write: true, isDir: true})
	return nil
}

func (f *fakeRegisters) String() string {
	return "fake"
}

func (f *fakeRegisters) sleep(d time.Duration) {
	f.events = append(f.events, event{sleep: d})
}

func (f *fakeRegisters) sleeps() []time.Duration {
	var out []time.Duration
	for _, e := range f.events {
		if !e.write {
			out = append(out, e.sleep)
		}
	}
	return out
}

// transfer is a decoded byte sent to the controller.
type transfer struct {
	data bool
	b    byte
}

type fixture struct {
	t    *testing.T
	regs *fakeRegisters
	dev  *Dev
	mode Mode
	rs   uint8
	en   uint8
	pins []uint8
	mark int
}

// Pin assignment of the Arty board wiring: D7 on IO 0 up to D0 on IO 7.
var (
	pins4Bit = []uint8{3, 2, 1, 0}
	pins8Bit = []uint8{7, 6, 5, 4, 3, 2, 1, 0}
)

const (
	testRS = 9
	testEN = 8
)

func newFixture(t *testing.T, mode Mode) *fixture {
	t.Helper()
	fx := &fixture{
		t:    t,
		regs: &fakeRegisters{dir: 0xFFFFFFFF, enMask: 1 << testEN},
		mode: mode,
		rs:   testRS,
		en:   testEN,
		pins: pins4Bit,
	}
	if mode == Mode8Bit {
		fx.pins = pins8Bit
	}
	fx.dev = NewDev(fx.regs, &Opts{Blink: true, Sleep: fx.regs.sleep})
	return fx
}

// start initializes and begins the display, then forgets the bring-up
// traffic.
func (fx *fixture) start(rows, cols uint8) *Dev {
	fx.t.Helper()
	if err := fx.dev.Init(fx.mode, fx.rs, fx.en, fx.pins...); err != nil {
		fx.t.Fatalf("Init() = %v", err)
	}
	if err := fx.dev.Begin(rows, cols); err != nil {
		fx.t.Fatalf("Begin(%d, %d) = %v", rows, cols, err)
	}
	fx.mark = len(fx.regs.latches)
	return fx.dev
}

// decode extracts the value on the data pins of a latched data word.
func (fx *fixture) decode(raw uint32, n int) byte {
	var b byte
	for i := 0; i < n; i++ {
		if raw&(1<<fx.pins[i]) != 0 {
			b |= 1 << i
		}
	}
	return b
}

// transfers returns the bytes sent since start.
func (fx *fixture) transfers() []transfer {
	latches := fx.regs.latches[fx.mark:]
	var out []transfer
	if fx.mode == Mode8Bit {
		for _, raw := range latches {
			out = append(out, transfer{data: raw&(1<<fx.rs) != 0, b: fx.decode(raw, 8)})
		}
		return out
	}
	if len(latches)%2 != 0 {
		fx.t.Fatalf("odd number of nibbles latched: %d", len(latches))
	}
	for i := 0; i < len(latches); i += 2 {
		hi, lo := latches[i], latches[i+1]
		if hi&(1<<fx.rs) != lo&(1<<fx.rs) {
			fx.t.Fatalf("register select changed between nibbles of transfer %d", i/2)
		}
		out = append(out, transfer{data: hi&(1<<fx.rs) != 0, b: fx.decode(hi, 4)<<4 | fx.decode(lo, 4)})
	}
	return out
}

// text returns the characters written since start.
func (fx *fixture) text() string {
	var s []byte
	for _, x := range fx.transfers() {
		if x.data {
			s = append(s, x.b)
		}
	}
	return string(s)
}

// commands returns the instructions sent since start.
func (fx *fixture) commands() []byte {
	var c []byte
	for _, x := range fx.transfers() {
		if !x.data {
			c = append(c, x.b)
		}
	}
	return c
}
