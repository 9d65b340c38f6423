/*
Copyright 2024 Tim St. Pierre
HD44780U instruction set
*/
package hd44780

type instruction byte

const (
	instClearDisplay   instruction = 0x01
	instReturnHome     instruction = 0x02
	instEntryMode      instruction = 0x04
	instDisplayControl instruction = 0x08
	instShift          instruction = 0x10
	instFunctionSet    instruction = 0x20
	instSetDDRAM       instruction = 0x80
)

// Options for instEntryMode
type entryFlags byte

const (
	entryIncrement    entryFlags = 0x02 // 0 = decrement
	entryDisplayShift entryFlags = 0x01 // shift the display on write
)

func (f entryFlags) instruction() byte {
	return byte(instEntryMode) | byte(f)
}

// Options for instDisplayControl
type displayFlags byte

const (
	displayOn     displayFlags = 0x04
	displayCursor displayFlags = 0x02
	displayBlink  displayFlags = 0x01
)

func (f displayFlags) instruction() byte {
	return byte(instDisplayControl) | byte(f)
}

// Options for instFunctionSet
type functionFlags byte

const (
	function8Bit     functionFlags = 0x10 // 0 = 4 bit interface
	functionTwoLines functionFlags = 0x08 // 0 = 1 line
	function5x10Dots functionFlags = 0x04 // 0 = 5x8 dots
)

func (f functionFlags) instruction() byte {
	return byte(instFunctionSet) | byte(f)
}

// Options for instShift
type shiftFlags byte

const (
	shiftDisplay shiftFlags = 0x08 // 0 = move the cursor only
	shiftRight   shiftFlags = 0x04 // 0 = left
)

func (f shiftFlags) instruction() byte {
	return byte(instShift) | byte(f)
}

// setDDRAM returns the instruction moving the address counter to addr.
func setDDRAM(addr byte) byte {
	return byte(instSetDDRAM) | addr&0x7F
}
